// Package audacity is a typed client for the application's scripting
// interface. Command schemas come from the catalog, rendered command text
// goes out through an Executor, and responses come back with the status
// trailer parsed off.
package audacity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbright/audpipe/internal/catalog"
)

// Executor sends one rendered command and returns the raw response text.
// *pipe.Channel satisfies it.
type Executor interface {
	Execute(ctx context.Context, command string) (string, error)
}

// ErrInteractionRequired marks commands that open a dialog in the
// application window. Scripting stalls until a human dismisses the dialog,
// so the client refuses them unless configured otherwise.
var ErrInteractionRequired = errors.New("command opens a dialog and needs an interactive session")

// Config carries client behavior knobs.
type Config struct {
	// AllowInteractive permits dialog-opening commands.
	AllowInteractive bool
}

// Client issues validated commands to a running application instance.
type Client struct {
	exec             Executor
	allowInteractive bool
	log              *slog.Logger
}

// NewClient wraps exec. A nil logger discards debug output.
func NewClient(exec Executor, cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{exec: exec, allowInteractive: cfg.AllowInteractive, log: log}
}

// Do looks up name in the catalog, validates args against its schema, and
// sends the rendered command. The raw response comes back verbatim,
// trailer included.
func (c *Client) Do(ctx context.Context, name string, args map[string]any) (string, error) {
	spec, ok := catalog.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown command %q", name)
	}
	if spec.Interactive && !c.allowInteractive {
		return "", fmt.Errorf("%s: %w", name, ErrInteractionRequired)
	}
	command, err := spec.Build(args)
	if err != nil {
		return "", err
	}
	c.log.Debug("sending command", "command", command)
	response, err := c.exec.Execute(ctx, command)
	if err != nil {
		return "", err
	}
	c.log.Debug("received response", "bytes", len(response))
	return response, nil
}

func (c *Client) run(ctx context.Context, name string, args map[string]any) (Result, error) {
	raw, err := c.Do(ctx, name, args)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(raw), nil
}

func (c *Client) bare(ctx context.Context, name string) error {
	_, err := c.run(ctx, name, nil)
	return err
}
