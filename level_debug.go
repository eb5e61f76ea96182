//go:build taglog_debug

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_debug build tag.
const CompileLevel = core.DebugLevel
