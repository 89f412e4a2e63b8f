// Package pipe drives a running Audacity instance over the two
// mod-script-pipe endpoints: one named pipe carrying command text to the
// application, one carrying response text back.
package pipe

import (
	"bufio"
	"context"
	"errors"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Options adjusts a Channel away from the platform defaults.
type Options struct {
	// ToPath and FromPath override the endpoint paths when non-empty.
	ToPath   string
	FromPath string

	// ReceiveTimeout bounds the wait for response data. Zero keeps the
	// original block-forever behavior.
	ReceiveTimeout time.Duration
}

// Channel executes textual macro commands against the application. Every
// call checks, opens, and closes both endpoints afresh; no handle survives
// between calls. A mutex keeps concurrent callers from interleaving
// request/response pairs on the shared endpoints.
type Channel struct {
	mu        sync.Mutex
	endpoints Endpoints
	timeout   time.Duration
}

// New builds a Channel for the current platform, applying opts overrides.
func New(opts Options) *Channel {
	endpoints := DefaultEndpoints(runtime.GOOS, os.Getuid())
	if opts.ToPath != "" {
		endpoints.To = opts.ToPath
	}
	if opts.FromPath != "" {
		endpoints.From = opts.FromPath
	}
	return &Channel{endpoints: endpoints, timeout: opts.ReceiveTimeout}
}

// Endpoints returns the resolved endpoint paths and framing.
func (c *Channel) Endpoints() Endpoints {
	return c.endpoints
}

// Execute sends one command and returns the raw response text. The command
// is opaque payload: nothing is validated, trimmed, or escaped here. The
// returned text keeps each response line's trailing newline and excludes
// the blank sentinel line the application appends.
//
// Both endpoints must already exist; otherwise an UnavailableError names
// the missing path. A response containing the failure marker becomes a
// CommandError carrying the full text. Every other I/O failure from open,
// write, read, or close propagates untranslated.
//
// Opening blocks until the application has the opposite end of each pipe
// open; that rendezvous is the protocol's handshake, not a hang.
func (c *Channel) Execute(ctx context.Context, command string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := checkEndpoint(c.endpoints.To); err != nil {
		return "", err
	}
	c.settle()
	if err := checkEndpoint(c.endpoints.From); err != nil {
		return "", err
	}
	c.settle()

	to, err := os.OpenFile(c.endpoints.To, os.O_WRONLY, 0)
	if err != nil {
		return "", err
	}
	from, err := os.Open(c.endpoints.From)
	if err != nil {
		_ = to.Close()
		return "", err
	}

	if _, err := to.WriteString(frame(command, c.endpoints.Terminator)); err != nil {
		_ = to.Close()
		_ = from.Close()
		return "", err
	}

	response, err := c.receive(ctx, from)
	if err != nil {
		_ = to.Close()
		_ = from.Close()
		return "", err
	}

	if err := to.Close(); err != nil {
		_ = from.Close()
		return "", err
	}
	c.settle()
	if err := from.Close(); err != nil {
		return "", err
	}

	if strings.Contains(response, failureMarker) {
		return "", &CommandError{Response: response}
	}
	return response, nil
}

// frame renders the exact bytes sent for one command.
func frame(command, terminator string) string {
	return command + terminator
}

// checkEndpoint verifies path exists before any open is attempted, so a
// stopped application fails fast instead of blocking in the rendezvous.
func checkEndpoint(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &UnavailableError{Path: path}
		}
		return err
	}
	return nil
}

func (c *Channel) settle() {
	if c.endpoints.Settle > 0 {
		time.Sleep(c.endpoints.Settle)
	}
}

// receive accumulates response lines with the accumulation loop the
// original client uses: the line just read is held back one iteration, and
// reading stops when a bare newline arrives after non-empty accumulated
// content. A leading blank line is therefore absorbed into the response
// rather than terminating it.
func (c *Channel) receive(ctx context.Context, from *os.File) (string, error) {
	if c.timeout > 0 {
		err := from.SetReadDeadline(time.Now().Add(c.timeout))
		if err != nil && !errors.Is(err, os.ErrNoDeadline) {
			return "", err
		}
	}
	stop := context.AfterFunc(ctx, func() {
		_ = from.SetReadDeadline(time.Unix(0, 1))
	})
	defer stop()

	reader := bufio.NewReader(from)
	var response strings.Builder
	line := ""
	for {
		response.WriteString(line)
		next, err := reader.ReadString('\n')
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", err
		}
		line = next
		if line == "\n" && response.Len() > 0 {
			break
		}
	}
	return response.String(), nil
}
