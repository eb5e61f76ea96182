package taglog

import (
	"github.com/taglog-go/taglog/core"
	"github.com/taglog-go/taglog/formatter"
)

// Log is a tagged emission handle bound to a Registry. The usual pattern
// is one per package:
//
//	var log = taglog.Tag("HTTP")
//
// An empty tag emits untagged messages. Log values are immutable and safe
// for concurrent use.
type Log struct {
	tag string
	reg *Registry
}

// Tag creates a Log bound to the default Registry.
func Tag(tag string) *Log {
	return &Log{tag: tag, reg: defaultRegistry}
}

// Tag creates a Log bound to r.
func (r *Registry) Tag(tag string) *Log {
	return &Log{tag: tag, reg: r}
}

// Enabled reports whether a message at lvl would currently reach the
// sink.
func (l *Log) Enabled(lvl core.Level) bool {
	return l.reg.Enabled(lvl)
}

// Verbosef logs a formatted message at VerboseLevel.
func (l *Log) Verbosef(format string, args ...any) {
	if !AllowVerbose {
		return
	}
	if core.VerboseLevel < l.reg.OutputLevel() {
		return
	}
	l.logf(core.VerboseLevel, format, args)
}

// Debugf logs a formatted message at DebugLevel.
func (l *Log) Debugf(format string, args ...any) {
	if !AllowDebug {
		return
	}
	if core.DebugLevel < l.reg.OutputLevel() {
		return
	}
	l.logf(core.DebugLevel, format, args)
}

// Infof logs a formatted message at InfoLevel.
func (l *Log) Infof(format string, args ...any) {
	if !AllowInfo {
		return
	}
	if core.InfoLevel < l.reg.OutputLevel() {
		return
	}
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted message at WarnLevel.
func (l *Log) Warnf(format string, args ...any) {
	if !AllowWarn {
		return
	}
	if core.WarnLevel < l.reg.OutputLevel() {
		return
	}
	l.logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted message at ErrorLevel.
func (l *Log) Errorf(format string, args ...any) {
	if !AllowError {
		return
	}
	if core.ErrorLevel < l.reg.OutputLevel() {
		return
	}
	l.logf(core.ErrorLevel, format, args)
}

// Fatalf logs a formatted message at FatalLevel. It does not terminate
// the process; abort policy belongs to the sink or the application.
func (l *Log) Fatalf(format string, args ...any) {
	if !AllowFatal {
		return
	}
	if core.FatalLevel < l.reg.OutputLevel() {
		return
	}
	l.logf(core.FatalLevel, format, args)
}

// Memf logs a formatted header line followed by a hex and ASCII dump of
// data at lvl, one sink call per dump row. Unlike the per-level methods
// the gate check is a runtime comparison, so arguments are always
// evaluated; guard the call with Allow or the Allow* constants where
// that matters.
func (l *Log) Memf(lvl core.Level, data []byte, format string, args ...any) {
	l.memf(lvl, data, format, args)
}

// memf must be called directly by an exported logging method or function,
// because caller capture uses a fixed frame depth.
func (l *Log) memf(lvl core.Level, data []byte, format string, args []any) {
	if !Allow(lvl) || lvl < l.reg.OutputLevel() {
		return
	}

	var caller core.CallerInfo
	if withCaller {
		// skip [runtime.Caller, core.Caller, memf, exported method]
		caller = core.Caller(3)
	}
	l.dispatch(lvl, caller, format, args)

	tag := composeTag(l.reg.TagPrefix(), l.tag)
	s := l.reg.loadSink()
	for off := 0; off < len(data); off += formatter.MemRowLen {
		end := off + formatter.MemRowLen
		if end > len(data) {
			end = len(data)
		}
		buf := formatter.GetBuffer()
		if tag != "" {
			buf.WriteString(tag)
			buf.WriteByte(' ')
		}
		formatter.AppendMemRow(buf, data[off:end])
		if s != nil {
			s(lvl, buf.Bytes(), buf.Len()-1)
		}
		formatter.PutBuffer(buf)
	}
}

// logf must be called directly by an exported logging method or function,
// because caller capture uses a fixed frame depth.
func (l *Log) logf(lvl core.Level, format string, args []any) {
	var caller core.CallerInfo
	if withCaller {
		// skip [runtime.Caller, core.Caller, logf, exported method]
		caller = core.Caller(3)
	}
	l.dispatch(lvl, caller, format, args)
}

func (l *Log) dispatch(lvl core.Level, caller core.CallerInfo, format string, args []any) {
	buf := formatter.GetBuffer()
	formatter.AppendLine(buf, caller, composeTag(l.reg.TagPrefix(), l.tag), format, args...)

	// The sink owns the buffer only for the duration of the call; it is
	// recycled afterwards. Rendering happens even with no sink registered
	// to keep dispatch cost predictable.
	if s := l.reg.loadSink(); s != nil {
		s(lvl, buf.Bytes(), buf.Len()-1)
	}
	formatter.PutBuffer(buf)
}

// composeTag joins the process-wide prefix and the call-site tag with a
// dot. It runs on every dispatch; the prefix may change between calls.
func composeTag(prefix, tag string) string {
	switch {
	case prefix == "":
		return tag
	case tag == "":
		return prefix
	default:
		return prefix + "." + tag
	}
}
