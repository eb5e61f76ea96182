package taglog

import (
	"testing"

	"github.com/taglog-go/taglog/core"
)

func BenchmarkSuppressedByOutputLevel(b *testing.B) {
	reg := NewRegistry()
	reg.SetOutputLevel(core.NoneLevel)
	reg.SetSink(func(core.Level, []byte, int) {})
	log := reg.Tag("BENCH")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Errorf("suppressed %d", i)
	}
}

func BenchmarkGuardedCompiledOut(b *testing.B) {
	log := NewRegistry().Tag("BENCH")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if AllowVerbose {
			log.Verbosef("gone %d", i)
		}
	}
}

func BenchmarkDelivered(b *testing.B) {
	reg := NewRegistry()
	reg.SetSink(func(core.Level, []byte, int) {})
	log := reg.Tag("BENCH")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Errorf("delivered %d", i)
	}
}

func BenchmarkDeliveredNoSink(b *testing.B) {
	reg := NewRegistry()
	log := reg.Tag("BENCH")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Errorf("rendered only %d", i)
	}
}

func BenchmarkDeliveredParallel(b *testing.B) {
	reg := NewRegistry()
	reg.SetSink(func(core.Level, []byte, int) {})
	log := reg.Tag("BENCH")

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Errorf("parallel")
		}
	})
}
