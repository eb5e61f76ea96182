package taglog

import (
	"sync/atomic"

	"github.com/taglog-go/taglog/core"
)

// Registry holds the runtime logging configuration: the output severity
// threshold, the tag prefix, and the sink. All fields are atomic, so
// configuration calls may race with dispatches and with each other;
// readers always observe a fully written value. The three fields have no
// transactional relationship, setting one never affects the others.
type Registry struct {
	outputLevel atomic.Int32
	tagPrefix   atomic.Pointer[string]
	sink        atomic.Pointer[core.Sink]
}

// NewRegistry creates a Registry with the most permissive output level
// (VerboseLevel), no tag prefix, and no sink.
func NewRegistry() *Registry {
	r := &Registry{}
	r.outputLevel.Store(int32(core.VerboseLevel))
	return r
}

// SetOutputLevel replaces the output severity threshold. Any value of the
// level domain is accepted, including NoneLevel to silence all output
// without rebuilding.
func (r *Registry) SetOutputLevel(lvl core.Level) {
	r.outputLevel.Store(int32(lvl))
}

// OutputLevel returns the current output severity threshold.
func (r *Registry) OutputLevel() core.Level {
	return core.Level(r.outputLevel.Load())
}

// SetTagPrefix replaces the tag prefix. The prefix is joined to each
// call-site tag with a dot; an empty string clears it.
func (r *Registry) SetTagPrefix(prefix string) {
	if prefix == "" {
		r.tagPrefix.Store(nil)
		return
	}
	r.tagPrefix.Store(&prefix)
}

// TagPrefix returns the current tag prefix, or "" when none is set.
func (r *Registry) TagPrefix() string {
	if p := r.tagPrefix.Load(); p != nil {
		return *p
	}
	return ""
}

// SetSink replaces the sink. A nil sink clears the slot: messages that
// pass both thresholds are still rendered, then discarded.
func (r *Registry) SetSink(s core.Sink) {
	if s == nil {
		r.sink.Store(nil)
		return
	}
	r.sink.Store(&s)
}

func (r *Registry) loadSink() core.Sink {
	if p := r.sink.Load(); p != nil {
		return *p
	}
	return nil
}

// Enabled reports whether a message at lvl would currently reach the
// sink: it must survive the compile-time threshold and the registry's
// output threshold.
func (r *Registry) Enabled(lvl core.Level) bool {
	return Allow(lvl) && lvl >= r.OutputLevel()
}

// defaultRegistry backs the package-level configuration and emission API.
var defaultRegistry = NewRegistry()

// Default returns the process-wide Registry used by the package-level
// functions and by Log values created with Tag.
func Default() *Registry {
	return defaultRegistry
}

// SetOutputLevel replaces the output severity threshold of the default
// Registry.
func SetOutputLevel(lvl core.Level) {
	defaultRegistry.SetOutputLevel(lvl)
}

// SetTagPrefix replaces the tag prefix of the default Registry.
func SetTagPrefix(prefix string) {
	defaultRegistry.SetTagPrefix(prefix)
}

// SetSink replaces the sink of the default Registry.
func SetSink(s core.Sink) {
	defaultRegistry.SetSink(s)
}

// Enabled reports whether a message at lvl would currently reach the
// default Registry's sink.
func Enabled(lvl core.Level) bool {
	return defaultRegistry.Enabled(lvl)
}
