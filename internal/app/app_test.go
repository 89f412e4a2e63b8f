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
)

func TestExecuteHelpAndVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, Execute(context.Background(), []string{"--help"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "Usage:")
	require.Empty(t, stderr.String())

	stdout.Reset()
	require.Equal(t, 0, Execute(context.Background(), []string{"version"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "audpipe")
	require.Empty(t, stderr.String())
}

func TestExecuteUnknownCommandExitsWithUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"frobnicate"}, &stdout, &stderr)
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "unknown command")
	require.Contains(t, stderr.String(), "Usage:")
}

func TestExecuteCommandsListsCatalog(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"commands"}, &stdout, &stderr)
	require.Equal(t, 0, exitCode)
	require.Empty(t, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Greater(t, len(lines), 300)
	require.Contains(t, lines, "Chirp")
	require.Contains(t, lines, "Play")
	require.Contains(t, lines, "GetInfo")
}

func TestExecuteCommandsDescribesParameters(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"commands", "Chirp"}, &stdout, &stderr)
	require.Equal(t, 0, exitCode)

	out := stdout.String()
	require.Contains(t, out, "Chirp")
	require.Contains(t, out, "StartFreq")
	require.Contains(t, out, "float")
	require.Contains(t, out, "default 440")
	require.Contains(t, out, "at least 0")
	require.Contains(t, out, "one of Sine")
}

func TestExecuteCommandsDescribesDialog(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"commands", "SaveAs"}, &stdout, &stderr)
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdout.String(), "opens a dialog")
}

func TestExecuteCommandsBareName(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"commands", "Play"}, &stdout, &stderr)
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdout.String(), "no parameters")
}

func TestExecuteCommandsUnknownName(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"commands", "NotARealCommand"}, &stdout, &stderr)
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "unknown command")
}

func TestExecuteCommandsTooManyArgs(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"commands", "Chirp", "Tone"}, &stdout, &stderr)
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "at most one name")
}

func TestRunnerDoUsageErrors(t *testing.T) {
	configPath := setupRunnerEnv(t, "{}\n")
	runner := Runner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	stderr := &bytes.Buffer{}
	runner.Stderr = stderr
	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "do"})
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "needs a command name")

	stderr.Reset()
	exitCode = runner.Execute(context.Background(), []string{"--config", configPath, "do", "Chirp", "not-a-pair"})
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "expected KEY=VALUE")
}

func TestRunnerDoUnknownName(t *testing.T) {
	configPath := setupRunnerEnv(t, "{}\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "do", "NotARealCommand"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "unknown command")
}

func TestRunnerDoBlocksDialogWhenConfigured(t *testing.T) {
	configPath := setupRunnerEnv(t, `{"allow_interactive": false}`)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "do", "SaveAs"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "interactive session")
}

func TestRunnerSendUsage(t *testing.T) {
	configPath := setupRunnerEnv(t, "{}\n")

	var stderr bytes.Buffer
	runner := Runner{Stdout: &bytes.Buffer{}, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "send"})
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "send needs a command")
}

func TestRunnerMessageUsage(t *testing.T) {
	configPath := setupRunnerEnv(t, "{}\n")

	var stderr bytes.Buffer
	runner := Runner{Stdout: &bytes.Buffer{}, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "message"})
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "message needs text")
}

func TestRunnerInfoRejectsPositionalArgs(t *testing.T) {
	configPath := setupRunnerEnv(t, "{}\n")

	var stderr bytes.Buffer
	runner := Runner{Stdout: &bytes.Buffer{}, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "info", "Tracks"})
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "no positional arguments")
}

func TestRunnerSendReportsMissingPipe(t *testing.T) {
	missing := t.TempDir()
	configPath := setupRunnerEnv(t, fmt.Sprintf(`{
	"pipe": {
		"to": %q,
		"from": %q,
	},
}`, filepath.Join(missing, "to.pipe"), filepath.Join(missing, "from.pipe")))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "send", "Play"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "does not exist")
	require.Empty(t, stdout.String())
}

func TestRunnerPrintsLegacyConfigWarning(t *testing.T) {
	missing := t.TempDir()
	content := fmt.Sprintf("pipe.to = %s\npipe.from = %s\n",
		filepath.Join(missing, "to.pipe"), filepath.Join(missing, "from.pipe"))
	configPath := setupRunnerEnv(t, content)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "send", "Play"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "warning:")
	require.Contains(t, stderr.String(), "deprecated")
}

func TestRunnerDoctorReportsMissingPipes(t *testing.T) {
	missing := t.TempDir()
	configPath := setupRunnerEnv(t, fmt.Sprintf(`{
	"pipe": {
		"to": %q,
		"from": %q,
	},
}`, filepath.Join(missing, "to.pipe"), filepath.Join(missing, "from.pipe")))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", configPath, "doctor"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdout.String(), "[OK] config:")
	require.Contains(t, stdout.String(), "[FAIL] pipe.to:")
	require.Contains(t, stdout.String(), "[FAIL] pipe.from:")
}

// setupRunnerEnv isolates logging output and writes a config file with the
// given content, returning its path.
func setupRunnerEnv(t *testing.T, configContent string) string {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
	return configPath
}
