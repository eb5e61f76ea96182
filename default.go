package taglog

import "github.com/taglog-go/taglog/core"

// untagged backs the package-level emission functions.
var untagged = &Log{reg: defaultRegistry}

// Verbosef logs a formatted untagged message at VerboseLevel using the
// default Registry.
func Verbosef(format string, args ...any) {
	if !AllowVerbose {
		return
	}
	if core.VerboseLevel < defaultRegistry.OutputLevel() {
		return
	}
	untagged.logf(core.VerboseLevel, format, args)
}

// Debugf logs a formatted untagged message at DebugLevel using the
// default Registry.
func Debugf(format string, args ...any) {
	if !AllowDebug {
		return
	}
	if core.DebugLevel < defaultRegistry.OutputLevel() {
		return
	}
	untagged.logf(core.DebugLevel, format, args)
}

// Infof logs a formatted untagged message at InfoLevel using the default
// Registry.
func Infof(format string, args ...any) {
	if !AllowInfo {
		return
	}
	if core.InfoLevel < defaultRegistry.OutputLevel() {
		return
	}
	untagged.logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted untagged message at WarnLevel using the default
// Registry.
func Warnf(format string, args ...any) {
	if !AllowWarn {
		return
	}
	if core.WarnLevel < defaultRegistry.OutputLevel() {
		return
	}
	untagged.logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted untagged message at ErrorLevel using the
// default Registry.
func Errorf(format string, args ...any) {
	if !AllowError {
		return
	}
	if core.ErrorLevel < defaultRegistry.OutputLevel() {
		return
	}
	untagged.logf(core.ErrorLevel, format, args)
}

// Fatalf logs a formatted untagged message at FatalLevel using the
// default Registry. It does not terminate the process.
func Fatalf(format string, args ...any) {
	if !AllowFatal {
		return
	}
	if core.FatalLevel < defaultRegistry.OutputLevel() {
		return
	}
	untagged.logf(core.FatalLevel, format, args)
}

// Memf logs a formatted untagged header and memory dump at lvl using the
// default Registry.
func Memf(lvl core.Level, data []byte, format string, args ...any) {
	untagged.memf(lvl, data, format, args)
}
