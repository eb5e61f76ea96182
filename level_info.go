//go:build taglog_info

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_info build tag.
const CompileLevel = core.InfoLevel
