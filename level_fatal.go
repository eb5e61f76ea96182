//go:build taglog_fatal

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_fatal build tag.
const CompileLevel = core.FatalLevel
