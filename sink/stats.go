package sink

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/taglog-go/taglog/core"
)

// Stats counts messages delivered through a Counting sink, per level and
// in total. Counters are striped, so concurrent dispatches never contend
// on a single cache line.
type Stats struct {
	levels [int(core.FatalLevel) + 1]*xsync.Counter
	total  *xsync.Counter
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	s := &Stats{total: xsync.NewCounter()}
	for i := range s.levels {
		s.levels[i] = xsync.NewCounter()
	}
	return s
}

// Delivered returns the number of messages delivered at lvl.
func (s *Stats) Delivered(lvl core.Level) int64 {
	if lvl < 0 || int(lvl) >= len(s.levels) {
		return 0
	}
	return s.levels[lvl].Value()
}

// Total returns the number of messages delivered at any level.
func (s *Stats) Total() int64 {
	return s.total.Value()
}

func (s *Stats) record(lvl core.Level) {
	if lvl >= 0 && int(lvl) < len(s.levels) {
		s.levels[lvl].Inc()
	}
	s.total.Inc()
}

// Counting wraps next, recording every delivery in stats before
// forwarding. A nil next counts deliveries and discards the message.
func Counting(stats *Stats, next core.Sink) core.Sink {
	return func(lvl core.Level, line []byte, n int) {
		stats.record(lvl)
		if next != nil {
			next(lvl, line, n)
		}
	}
}
