//go:build taglog_warn

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_warn build tag.
const CompileLevel = core.WarnLevel
