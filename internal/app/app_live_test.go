//go:build unix

package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/audpipe/internal/pipe/pipetest"
)

// liveScript answers like the application: Message echoes its text, GetInfo
// returns a payload, Repeat fails, everything else just succeeds.
func liveScript(command string) []string {
	switch {
	case strings.HasPrefix(command, "Message: "):
		text := command
		if _, quoted, ok := strings.Cut(command, `Text="`); ok {
			text = strings.TrimSuffix(quoted, `"`)
		}
		return []string{text, "BatchCommand finished: OK"}
	case strings.HasPrefix(command, "GetInfo: "):
		return []string{`[{"name": "clip one"}]`, "BatchCommand finished: OK"}
	case strings.HasPrefix(command, "Repeat"):
		return []string{
			"Your batch command of Repeat was not recognized.",
			"BatchCommand finished: Failed!",
		}
	default:
		return []string{"BatchCommand finished: OK"}
	}
}

func startLiveRunner(t *testing.T) (string, *pipetest.Responder) {
	t.Helper()

	responder, err := pipetest.Start(t.TempDir(), liveScript)
	require.NoError(t, err)
	t.Cleanup(responder.Close)

	t.Setenv("XDG_STATE_HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.jsonc")
	content := fmt.Sprintf(`{
	// test endpoints
	"pipe": {
		"to": %q,
		"from": %q,
	},
}`, responder.ToPath(), responder.FromPath())
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath, responder
}

func TestRunnerSendRoundTrip(t *testing.T) {
	configPath, responder := startLiveRunner(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "send", "Play"})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Equal(t, "BatchCommand finished: OK\n", stdout.String())

	received := responder.Received()
	require.Len(t, received, 1)
	require.Equal(t, "Play\n", received[0])
}

func TestRunnerDoRendersSchemaDefaults(t *testing.T) {
	configPath, responder := startLiveRunner(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "do", "Chirp", "StartFreq=880"})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Empty(t, stdout.String())

	received := responder.Received()
	require.Len(t, received, 1)
	require.True(t, strings.HasPrefix(received[0], "Chirp: "))
	require.Contains(t, received[0], `StartFreq="880"`)
	require.Contains(t, received[0], `EndFreq="1320"`)
}

func TestRunnerDoSurfacesCommandFailure(t *testing.T) {
	configPath, _ := startLiveRunner(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "do", "Repeat", "Count=2"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "command failed")
	require.Empty(t, stdout.String())
}

func TestRunnerMessageRoundTrip(t *testing.T) {
	configPath, _ := startLiveRunner(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "message", "hello", "world"})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Equal(t, "hello world\n", stdout.String())
}

func TestRunnerInfoRoundTrip(t *testing.T) {
	configPath, responder := startLiveRunner(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "info", "--type", "Tracks", "--format", "Brief"})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Contains(t, stdout.String(), "clip one")

	received := responder.Received()
	require.Len(t, received, 1)
	require.Contains(t, received[0], `GetInfo: Type="Tracks" Format="Brief"`)
}
