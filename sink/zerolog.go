package sink

import (
	"github.com/rs/zerolog"

	"github.com/taglog-go/taglog/core"
)

// NewZerolog returns a sink that forwards messages to l. Fatal messages
// are logged via WithLevel, which records the fatal level without
// exiting the process.
func NewZerolog(l zerolog.Logger) core.Sink {
	return func(lvl core.Level, line []byte, n int) {
		l.WithLevel(zerologLevel(lvl)).Msg(string(line[:n]))
	}
}

func zerologLevel(lvl core.Level) zerolog.Level {
	switch lvl {
	case core.VerboseLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
