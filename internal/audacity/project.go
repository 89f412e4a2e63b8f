package audacity

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// NewProject opens a new empty project window. Commands always address the
// most recently opened window; there is no way to target another one.
func (c *Client) NewProject(ctx context.Context) error {
	return c.bare(ctx, "New")
}

// OpenProject opens an audio file or saved project. The file must exist
// locally: a bad path makes the application raise an error dialog that
// stalls scripting, so it is checked here first.
func (c *Client) OpenProject(ctx context.Context, filename string, addToHistory bool) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("open project: %w", err)
	}
	_, err := c.run(ctx, "OpenProject2", map[string]any{
		"Filename":     filename,
		"AddToHistory": addToHistory,
	})
	return err
}

// SaveOptions adjusts SaveProject.
type SaveOptions struct {
	AddToHistory bool
	Compress     bool
	// KeepExisting leaves an existing file at the target path in place.
	// The application then raises an overwrite prompt instead of saving,
	// so scripting stalls until a human answers it.
	KeepExisting bool
}

// SaveProject saves the current project to an .aup3 file. Unless
// KeepExisting is set, an existing file at that path is removed first so
// the application saves without prompting.
func (c *Client) SaveProject(ctx context.Context, filename string, opts SaveOptions) error {
	if !opts.KeepExisting {
		if err := os.Remove(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("save project: %w", err)
		}
	}
	_, err := c.run(ctx, "SaveProject2", map[string]any{
		"Filename":     filename,
		"AddToHistory": opts.AddToHistory,
		"Compress":     opts.Compress,
	})
	return err
}

// ExportAudio exports the selected audio (or everything when nothing is
// selected) to filename. The format follows the file extension; detailed
// options are always taken from the application's last-used export
// preferences. numChannels should be 1 or 2.
func (c *Client) ExportAudio(ctx context.Context, filename string, numChannels int) error {
	_, err := c.run(ctx, "Export2", map[string]any{
		"Filename":    filename,
		"NumChannels": numChannels,
	})
	return err
}

// ImportAudio imports an audio file into the current project as new tracks.
func (c *Client) ImportAudio(ctx context.Context, filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("import audio: %w", err)
	}
	_, err := c.run(ctx, "Import2", map[string]any{"Filename": filename})
	return err
}

// CloseProject closes the current project window. The application prompts
// about unsaved work, so save first when scripting.
func (c *Client) CloseProject(ctx context.Context) error {
	return c.bare(ctx, "Close")
}

// Quit asks the application to exit.
func (c *Client) Quit(ctx context.Context) error {
	return c.bare(ctx, "Exit")
}
