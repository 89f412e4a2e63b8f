//go:build unix

package doctor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/audpipe/internal/config"
	"github.com/rbright/audpipe/internal/pipe/pipetest"
)

// echoScript answers a Message command with its own text, the way the
// application does.
func echoScript(command string) []string {
	text := command
	if _, quoted, ok := strings.Cut(command, `Text="`); ok {
		text = strings.TrimSuffix(quoted, `"`)
	}
	return []string{text, "BatchCommand finished: OK"}
}

func TestRunAgainstLiveResponder(t *testing.T) {
	responder, err := pipetest.Start(t.TempDir(), echoScript)
	require.NoError(t, err)
	defer responder.Close()

	binDir := t.TempDir()
	fake := filepath.Join(binDir, "audacity")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := config.Default()
	cfg.Pipe.To = responder.ToPath()
	cfg.Pipe.From = responder.FromPath()

	loaded := config.Loaded{
		Path:   filepath.Join(binDir, "config.jsonc"),
		Config: cfg,
		Exists: false,
	}

	report := Run(context.Background(), loaded)
	require.True(t, report.OK(), "report:\n%s", report.String())
	require.Equal(t, 1, responder.Served())

	received := responder.Received()
	require.Len(t, received, 1)
	require.Contains(t, received[0], `Message: Text="audpipe doctor ping"`)
}
