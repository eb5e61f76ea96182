package sink

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/taglog-go/taglog/core"
)

func TestZerologForwarding(t *testing.T) {
	var buf bytes.Buffer
	s := NewZerolog(zerolog.New(&buf))

	s(core.WarnLevel, []byte("slow response\n"), 13)

	out := buf.String()
	require.Contains(t, out, `"level":"warn"`)
	require.Contains(t, out, `"message":"slow response"`)
}

func TestZerologFatalDoesNotExit(t *testing.T) {
	var buf bytes.Buffer
	s := NewZerolog(zerolog.New(&buf))

	s(core.FatalLevel, []byte("unrecoverable\n"), 13)

	require.Contains(t, buf.String(), `"level":"fatal"`)
}

func TestZerologLevelMapping(t *testing.T) {
	require.Equal(t, zerolog.TraceLevel, zerologLevel(core.VerboseLevel))
	require.Equal(t, zerolog.DebugLevel, zerologLevel(core.DebugLevel))
	require.Equal(t, zerolog.InfoLevel, zerologLevel(core.InfoLevel))
	require.Equal(t, zerolog.WarnLevel, zerologLevel(core.WarnLevel))
	require.Equal(t, zerolog.ErrorLevel, zerologLevel(core.ErrorLevel))
	require.Equal(t, zerolog.FatalLevel, zerologLevel(core.FatalLevel))
}
