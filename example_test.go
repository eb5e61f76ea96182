package taglog_test

import (
	"os"

	"github.com/taglog-go/taglog"
	"github.com/taglog-go/taglog/core"
	"github.com/taglog-go/taglog/sink"
)

var log = taglog.Tag("HTTP")

func Example() {
	taglog.SetSink(sink.NewWriter(os.Stdout, sink.Config{}))
	taglog.SetTagPrefix("NET")
	taglog.SetOutputLevel(taglog.WarnLevel)

	log.Infof("filtered out at run time")
	if taglog.AllowDebug {
		// Removed entirely from release builds, argument included
		log.Debugf("headers: %v", expensiveDump())
	}
	log.Warnf("retrying request")
}

func ExampleRegistry() {
	reg := taglog.NewRegistry()
	reg.SetSink(func(lvl core.Level, line []byte, n int) {
		os.Stdout.Write(line[:n])
	})

	reg.Tag("DB").Errorf("connect failed after %d attempts", 3)
	// Output varies with build flavor: debug builds prepend the caller.
}

func expensiveDump() string { return "" }
