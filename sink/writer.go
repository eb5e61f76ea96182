package sink

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/taglog-go/taglog/core"
	"github.com/taglog-go/taglog/formatter"
)

// Config holds common writer sink configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for time.StampMilli)
	TimestampFormat string
}

// pre-computed one-letter severity markers
var levelLetters = [...]byte{
	core.VerboseLevel: 'V',
	core.DebugLevel:   'D',
	core.InfoLevel:    'I',
	core.WarnLevel:    'W',
	core.ErrorLevel:   'E',
	core.FatalLevel:   'F',
}

func levelLetter(lvl core.Level) byte {
	if lvl >= 0 && int(lvl) < len(levelLetters) {
		if c := levelLetters[lvl]; c != 0 {
			return c
		}
	}
	return '?'
}

// NewWriter returns a sink that writes each message to w as
//
//	timestamp letter message\n
//
// where letter is the one-letter severity marker. Writes are serialized
// with a mutex, so the returned sink is safe for concurrent dispatches
// even when w is not.
func NewWriter(w io.Writer, cfg Config) core.Sink {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.StampMilli
	}

	var mu sync.Mutex
	return func(lvl core.Level, line []byte, n int) {
		buf := formatter.GetBuffer()
		buf.Write(time.Now().AppendFormat(buf.AvailableBuffer(), cfg.TimestampFormat))
		buf.WriteByte(' ')
		buf.WriteByte(levelLetter(lvl))
		buf.WriteByte(' ')
		buf.Write(line[:n])
		buf.WriteByte('\n')

		mu.Lock()
		_, _ = w.Write(buf.Bytes())
		mu.Unlock()

		formatter.PutBuffer(buf)
	}
}

// Stderr returns a writer sink bound to os.Stderr with default settings.
func Stderr() core.Sink {
	return NewWriter(os.Stderr, Config{})
}
