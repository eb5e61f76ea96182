package taglog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taglog-go/taglog/core"
)

// resetDefault restores the process-wide registry after a test mutated it.
func resetDefault(t *testing.T) {
	t.Cleanup(func() {
		SetOutputLevel(core.VerboseLevel)
		SetTagPrefix("")
		SetSink(nil)
	})
}

func TestPackageLevelEmission(t *testing.T) {
	resetDefault(t)

	var recs []dispatch
	SetSink(recordTo(&recs))

	Errorf("count=%d", 7)
	require.Len(t, recs, 1)
	require.Equal(t, core.ErrorLevel, recs[0].lvl)
	require.True(t, strings.HasSuffix(recs[0].line, "count=7\n"), "line = %q", recs[0].line)
}

func TestPackageLevelUntagged(t *testing.T) {
	resetDefault(t)

	var recs []dispatch
	SetSink(recordTo(&recs))

	// Without a prefix the line carries no tag; with one it becomes the
	// whole tag
	Warnf("plain")
	SetTagPrefix("SYS")
	Warnf("prefixed")

	require.Len(t, recs, 2)
	require.False(t, strings.HasPrefix(recs[0].line, "SYS"), "line = %q", recs[0].line)
	require.True(t, strings.HasPrefix(recs[1].line, "SYS "), "line = %q", recs[1].line)
}

func TestPackageLevelThreshold(t *testing.T) {
	resetDefault(t)

	var recs []dispatch
	SetSink(recordTo(&recs))
	SetOutputLevel(core.ErrorLevel)

	Infof("no")
	Warnf("no")
	Errorf("yes")
	Fatalf("yes")

	require.Len(t, recs, 2)
	require.Equal(t, core.ErrorLevel, recs[0].lvl)
	require.Equal(t, core.FatalLevel, recs[1].lvl)
}

func TestPackageLevelEnabled(t *testing.T) {
	resetDefault(t)

	SetOutputLevel(core.WarnLevel)
	require.False(t, Enabled(core.InfoLevel))
	require.True(t, Enabled(core.WarnLevel))

	SetOutputLevel(core.NoneLevel)
	require.False(t, Enabled(core.FatalLevel))
}

func TestTagBoundToDefaultRegistry(t *testing.T) {
	resetDefault(t)

	var recs []dispatch
	SetSink(recordTo(&recs))
	SetTagPrefix("NET")

	Tag("HTTP").Errorf("request failed")
	require.Len(t, recs, 1)
	require.True(t, strings.HasPrefix(recs[0].line, "NET.HTTP "), "line = %q", recs[0].line)
}

func TestPackageLevelMemf(t *testing.T) {
	resetDefault(t)

	var recs []dispatch
	SetSink(recordTo(&recs))

	Memf(core.WarnLevel, []byte{0xde, 0xad}, "header")
	require.Len(t, recs, 2)
	require.Contains(t, recs[0].line, "header")
	require.Contains(t, recs[1].line, "de ad")
}

func TestDefaultRegistryAccessor(t *testing.T) {
	resetDefault(t)

	Default().SetOutputLevel(core.ErrorLevel)
	require.False(t, Enabled(core.WarnLevel))
}

func TestFatalfDoesNotTerminate(t *testing.T) {
	resetDefault(t)

	var recs []dispatch
	SetSink(recordTo(&recs))

	Fatalf("still alive")

	// Reaching this line is the point
	require.Len(t, recs, 1)
	require.Equal(t, core.FatalLevel, recs[0].lvl)
}
