//go:build taglog_none

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_none build tag.
const CompileLevel = core.NoneLevel
