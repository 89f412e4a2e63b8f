//go:build unix

package pipe

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/rbright/audpipe/internal/pipe/pipetest"
)

func startResponder(t *testing.T, script pipetest.Script) *pipetest.Responder {
	t.Helper()
	responder, err := pipetest.Start(t.TempDir(), script)
	require.NoError(t, err)
	t.Cleanup(responder.Close)
	return responder
}

func channelFor(responder *pipetest.Responder, timeout time.Duration) *Channel {
	return New(Options{
		ToPath:         responder.ToPath(),
		FromPath:       responder.FromPath(),
		ReceiveTimeout: timeout,
	})
}

func TestExecuteRoundTripReturnsLinesBeforeSentinel(t *testing.T) {
	responder := startResponder(t, func(command string) []string {
		require.Equal(t, "NEW", command)
		return []string{"OK"}
	})

	response, err := channelFor(responder, time.Second).Execute(context.Background(), "NEW")
	require.NoError(t, err)
	require.Equal(t, "OK\n", response)

	responder.Close()
	require.Equal(t, []string{"NEW\n"}, responder.Received())
}

func TestExecuteKeepsDataLineNewlines(t *testing.T) {
	responder := startResponder(t, func(string) []string {
		return []string{"line one", "line two", "BatchCommand finished: OK"}
	})

	response, err := channelFor(responder, time.Second).Execute(context.Background(), "GetInfo: Type=Commands")
	require.NoError(t, err)
	require.Equal(t, "line one\nline two\nBatchCommand finished: OK\n", response)
}

func TestExecuteAbsorbsLeadingBlankLine(t *testing.T) {
	responder := startResponder(t, func(string) []string {
		return []string{"", "data"}
	})

	response, err := channelFor(responder, time.Second).Execute(context.Background(), "Play")
	require.NoError(t, err)
	require.Equal(t, "\ndata\n", response)
}

func TestExecuteDetectsFailureMarkerAnywhere(t *testing.T) {
	responder := startResponder(t, func(string) []string {
		return []string{"preamble", "BatchCommand finished: Failed!", "trailer"}
	})

	_, err := channelFor(responder, time.Second).Execute(context.Background(), "Amplify: Ratio=99")
	require.Error(t, err)
	require.True(t, IsCommandFailed(err))

	var failed *CommandError
	require.ErrorAs(t, err, &failed)
	require.Equal(t, "preamble\nBatchCommand finished: Failed!\ntrailer\n", failed.Response)
}

func TestExecuteMissingOutboundFailsBeforeInbound(t *testing.T) {
	dir := t.TempDir()
	channel := New(Options{
		ToPath:   filepath.Join(dir, "to.missing"),
		FromPath: filepath.Join(dir, "from.missing"),
	})

	_, err := channel.Execute(context.Background(), "NEW")
	require.True(t, IsUnavailable(err))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, filepath.Join(dir, "to.missing"), unavailable.Path)
}

func TestExecuteMissingInboundFailsBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	toPath := filepath.Join(dir, "to")
	require.NoError(t, unix.Mkfifo(toPath, 0o600))

	channel := New(Options{
		ToPath:   toPath,
		FromPath: filepath.Join(dir, "from.missing"),
	})

	_, err := channel.Execute(context.Background(), "NEW")
	require.True(t, IsUnavailable(err))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, filepath.Join(dir, "from.missing"), unavailable.Path)
}

func TestExecuteReopensEndpointsPerCall(t *testing.T) {
	responder := startResponder(t, func(string) []string {
		return []string{"BatchCommand finished: OK"}
	})
	channel := channelFor(responder, time.Second)

	for _, command := range []string{"Undo", "Redo"} {
		_, err := channel.Execute(context.Background(), command)
		require.NoError(t, err)
	}

	responder.Close()
	require.Equal(t, 2, responder.Served())
	require.Equal(t, []string{"Undo\n", "Redo\n"}, responder.Received())
}

// startHangingResponder answers the rendezvous and one command with a
// single data line, then holds the response pipe open without ever sending
// the blank sentinel. The returned release func lets it finish.
func startHangingResponder(t *testing.T, toPath, fromPath string) (release func()) {
	t.Helper()
	require.NoError(t, unix.Mkfifo(toPath, 0o600))
	require.NoError(t, unix.Mkfifo(fromPath, 0o600))

	stall := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		to, err := os.Open(toPath)
		if err != nil {
			return
		}
		defer to.Close()
		from, err := os.OpenFile(fromPath, os.O_WRONLY, 0)
		if err != nil {
			return
		}
		defer from.Close()
		if _, err := bufio.NewReader(to).ReadString('\n'); err != nil {
			return
		}
		_, _ = io.WriteString(from, "partial\n")
		<-stall
	}()
	return func() {
		close(stall)
		<-done
	}
}

func TestExecuteReceiveTimeoutUnblocksStalledRead(t *testing.T) {
	dir := t.TempDir()
	toPath := filepath.Join(dir, "to")
	fromPath := filepath.Join(dir, "from")
	release := startHangingResponder(t, toPath, fromPath)
	defer release()

	channel := New(Options{ToPath: toPath, FromPath: fromPath, ReceiveTimeout: 100 * time.Millisecond})
	_, err := channel.Execute(context.Background(), "Hang")
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	require.False(t, IsUnavailable(err))
	require.False(t, IsCommandFailed(err))
}

func TestExecuteContextCancelUnblocksStalledRead(t *testing.T) {
	dir := t.TempDir()
	toPath := filepath.Join(dir, "to")
	fromPath := filepath.Join(dir, "from")
	release := startHangingResponder(t, toPath, fromPath)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	channel := New(Options{ToPath: toPath, FromPath: fromPath})
	_, err := channel.Execute(ctx, "Hang")
	require.ErrorIs(t, err, context.Canceled)
}
