//go:build taglog_release && !taglog_verbose && !taglog_debug && !taglog_info && !taglog_warn && !taglog_error && !taglog_fatal && !taglog_none

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor. Without an explicit
// taglog_* level tag, release builds compile from InfoLevel up.
const CompileLevel = core.InfoLevel
