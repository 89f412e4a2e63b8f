package audacity

import "context"

// RelativeTo anchors time coordinates in selection commands.
type RelativeTo string

const (
	RelativeToProjectStart   RelativeTo = "ProjectStart"
	RelativeToProject        RelativeTo = "Project"
	RelativeToProjectEnd     RelativeTo = "ProjectEnd"
	RelativeToSelectionStart RelativeTo = "SelectionStart"
	RelativeToSelection      RelativeTo = "Selection"
	RelativeToSelectionEnd   RelativeTo = "SelectionEnd"
)

// SelectMode says whether a track selection replaces, extends, or shrinks
// the current one.
type SelectMode string

const (
	SelectModeSet    SelectMode = "Set"
	SelectModeAdd    SelectMode = "Add"
	SelectModeRemove SelectMode = "Remove"
)

func (c *Client) SelectAll(ctx context.Context) error  { return c.bare(ctx, "SelectAll") }
func (c *Client) SelectNone(ctx context.Context) error { return c.bare(ctx, "SelectNone") }

// SelectTime selects the time range [start, end] in seconds. A zero-valued
// relativeTo anchors at the project start, matching the application
// default. For partial updates that leave one edge unchanged, issue
// Do("SelectTime", ...) with only the keys to change.
func (c *Client) SelectTime(ctx context.Context, start, end float64, relativeTo RelativeTo) error {
	args := map[string]any{"Start": start, "End": end}
	if relativeTo != "" {
		args["RelativeTo"] = relativeTo
	}
	_, err := c.run(ctx, "SelectTime", args)
	return err
}

// SelectFrequencies bounds the spectral selection in Hz.
func (c *Client) SelectFrequencies(ctx context.Context, high, low float64) error {
	_, err := c.run(ctx, "SelectFrequencies", map[string]any{"High": high, "Low": low})
	return err
}

// SelectTracks selects count tracks starting at track (zero-based; fractions
// select a partial track height in the application's model).
func (c *Client) SelectTracks(ctx context.Context, track, count float64, mode SelectMode) error {
	args := map[string]any{"Track": track, "TrackCount": count}
	if mode != "" {
		args["Mode"] = mode
	}
	_, err := c.run(ctx, "SelectTracks", args)
	return err
}

// SaveSelection stores the current selection for RestoreSelection.
func (c *Client) SaveSelection(ctx context.Context) error { return c.bare(ctx, "SelSave") }

// RestoreSelection reselects what SaveSelection stored.
func (c *Client) RestoreSelection(ctx context.Context) error { return c.bare(ctx, "SelRestore") }
