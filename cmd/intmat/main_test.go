package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/cmd/shared"
	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
	"github.com/katalvlaran/intmat/session"
)

func runApp(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")

	var out, logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(nil) })
	log.SetColor(false)

	deps := &shared.Dependencies{
		Stdin:      func() io.Reader { return strings.NewReader(input) },
		Stdout:     func() io.Writer { return &out },
		IsTerminal: func(io.Reader) bool { return false },
	}
	code := run(context.Background(), append([]string{"intmat"}, args...), deps)

	return code, out.String(), logs.String()
}

func TestRun_DefaultCommandMultiplies(t *testing.T) {
	code, out, logs := runApp(t, "2 2 2 2 1 2 3 4 1 2 3 4")
	require.Equal(t, 0, code)
	require.Equal(t, "7 10\n15 22\n", out)
	require.Empty(t, logs)
}

func TestRun_Mismatch(t *testing.T) {
	code, out, logs := runApp(t, "2 3 2 2", "multiply")
	require.Equal(t, 1, code)
	require.Equal(t, session.MsgNotPossible+"\n", out)
	require.Empty(t, logs)
}

func TestRun_InputErrorIsReported(t *testing.T) {
	code, out, logs := runApp(t, "2 2 2", "multiply")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, logs, "[!] Error: ")
	require.Contains(t, logs, "columns of B")
}

func TestRun_InvalidFlagValue(t *testing.T) {
	code, _, logs := runApp(t, "", "multiply", "--overflow", "saturate")
	require.Equal(t, shared.ExitUsage, code)
	require.Contains(t, logs, "arithmetic.overflow")
}

func TestRun_Calc(t *testing.T) {
	code, out, _ := runApp(t, "", "calc", "6", "*", "7")
	require.Equal(t, 0, code)
	require.Equal(t, "42\n", out)
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runApp(t, "", "version")
	require.Equal(t, 0, code)
	require.NotEmpty(t, strings.TrimSpace(out))
}
