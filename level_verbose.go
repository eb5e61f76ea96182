//go:build taglog_verbose

package taglog

import "github.com/taglog-go/taglog/core"

// CompileLevel is the build-time severity floor, selected by the
// taglog_verbose build tag.
const CompileLevel = core.VerboseLevel
