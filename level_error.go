//go:build taglog_error

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_error build tag.
const CompileLevel = core.ErrorLevel
