package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taglog-go/taglog/core"
)

// NewZap returns a sink that forwards messages to l. FatalLevel maps to
// zap's Error level so the adapter never terminates the process; abort
// policy stays with the application.
func NewZap(l *zap.Logger) core.Sink {
	return func(lvl core.Level, line []byte, n int) {
		if ce := l.Check(zapLevel(lvl), string(line[:n])); ce != nil {
			ce.Write()
		}
	}
}

func zapLevel(lvl core.Level) zapcore.Level {
	switch lvl {
	case core.VerboseLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
