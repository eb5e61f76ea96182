//go:build !taglog_verbose && !taglog_debug && !taglog_info && !taglog_warn && !taglog_error && !taglog_fatal && !taglog_none && !taglog_release

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor. Without an explicit
// taglog_* level tag, debug builds compile everything from DebugLevel up.
const CompileLevel = core.DebugLevel
