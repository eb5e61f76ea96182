// Package taglog is a minimal, embeddable logging facade. Call sites
// emit leveled, tagged printf-style messages; the build decides which
// severities exist in the binary at all, and the running process decides
// which of those actually reach the single registered sink.
//
// # Compile-time threshold
//
// CompileLevel is a constant fixed per build with build tags. Explicit
// tags taglog_verbose through taglog_fatal select a floor directly and
// taglog_none compiles every call site out; without one, builds default
// to DebugLevel, or InfoLevel when the taglog_release tag is set. The
// per-level Allow* constants let call sites make suppressed statements
// vanish entirely, arguments included:
//
//	if taglog.AllowDebug {
//		log.Debugf("digest=%x", sha256.Sum256(payload))
//	}
//
// When AllowDebug is false the compiler removes the whole block; the
// digest is never computed. Calling log.Debugf without the guard is
// still a no-op below CompileLevel, but its arguments are evaluated.
// A package that wants a stricter local floor than the build-wide one
// declares its own constant guard on top of these.
//
// # Runtime configuration
//
// The output threshold, the tag prefix, and the sink live in a Registry.
// The package-level functions use a process-wide default instance:
//
//	taglog.SetSink(sink.Stderr())
//	taglog.SetOutputLevel(taglog.WarnLevel)
//	taglog.SetTagPrefix("NET")
//
// The output threshold can only restrict further, never relax, what the
// build compiled in; NoneLevel silences everything without rebuilding.
// All registry state is atomic, so reconfiguration may safely race with
// concurrent logging. With no sink registered, allowed messages are
// rendered and discarded.
//
// # Tags
//
// A Log value carries a per-call-site tag, conventionally one per
// package:
//
//	var log = taglog.Tag("HTTP")
//
// At dispatch the tag is joined to the process-wide prefix with a dot
// ("NET.HTTP" above). Tags are opaque strings; either side may be empty.
//
// Outside release builds each line also carries the calling function and
// a file:line locator. Fatal messages are forwarded like any other
// severity; the facade never terminates the process.
package taglog
