package sink

import (
	"context"
	"io"
	"log/slog"

	"github.com/phsym/console-slog"

	"github.com/taglog-go/taglog/core"
)

// LevelVerbose is the slog level verbose messages are forwarded at. slog
// has no level below Debug, so verbose sits one step under it.
const LevelVerbose = slog.LevelDebug - 4

// NewSlog returns a sink that forwards messages to l. The rendered line
// (without its terminator) becomes the slog message.
func NewSlog(l *slog.Logger) core.Sink {
	return func(lvl core.Level, line []byte, n int) {
		l.Log(context.Background(), slogLevel(lvl), string(line[:n]))
	}
}

// NewConsole returns a slog sink backed by a console-slog handler writing
// to w. The handler level is opened down to LevelVerbose, the lowest
// level the adapter emits; filtering belongs to the facade's thresholds.
func NewConsole(w io.Writer) core.Sink {
	h := console.NewHandler(w, &console.HandlerOptions{
		Level: LevelVerbose,
	})
	return NewSlog(slog.New(h))
}

func slogLevel(lvl core.Level) slog.Level {
	switch lvl {
	case core.VerboseLevel:
		return LevelVerbose
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
