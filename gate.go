package taglog

import "github.com/taglog-go/taglog/core"

// Level re-exports core.Level for convenience.
type Level = core.Level

const (
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
	NoneLevel    = core.NoneLevel
)

// Per-level compile gate constants. Each is true when its level survives
// CompileLevel, and is a compile-time constant: guarding a log statement
// with it lets the compiler remove the statement, including argument
// evaluation, from builds where the constant is false:
//
//	if taglog.AllowDebug {
//		taglog.Debugf("checksum=%x", expensiveChecksum(data))
//	}
//
// The unguarded form taglog.Debugf(...) is still correct and its body
// compiles to nothing below CompileLevel, but the arguments are evaluated
// at the call site; use the guarded form wherever that matters.
const (
	AllowVerbose = core.VerboseLevel >= CompileLevel
	AllowDebug   = core.DebugLevel >= CompileLevel
	AllowInfo    = core.InfoLevel >= CompileLevel
	AllowWarn    = core.WarnLevel >= CompileLevel
	AllowError   = core.ErrorLevel >= CompileLevel
	AllowFatal   = core.FatalLevel >= CompileLevel
)

// Allow reports whether lvl survives the compile-time threshold. The
// runtime output threshold can only restrict further; a level rejected
// here is physically absent from the build and cannot be re-enabled.
func Allow(lvl core.Level) bool {
	return lvl >= CompileLevel
}
