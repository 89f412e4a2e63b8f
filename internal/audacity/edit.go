package audacity

import "context"

// Editing commands operate on the current selection in the active project.

func (c *Client) Undo(ctx context.Context) error      { return c.bare(ctx, "Undo") }
func (c *Client) Redo(ctx context.Context) error      { return c.bare(ctx, "Redo") }
func (c *Client) Cut(ctx context.Context) error       { return c.bare(ctx, "Cut") }
func (c *Client) Copy(ctx context.Context) error      { return c.bare(ctx, "Copy") }
func (c *Client) Paste(ctx context.Context) error     { return c.bare(ctx, "Paste") }
func (c *Client) Delete(ctx context.Context) error    { return c.bare(ctx, "Delete") }
func (c *Client) Duplicate(ctx context.Context) error { return c.bare(ctx, "Duplicate") }

// Split cuts the selected clip at the selection boundaries without
// removing audio.
func (c *Client) Split(ctx context.Context) error { return c.bare(ctx, "Split") }

// SplitCut cuts the selection into the clipboard, leaving a gap rather
// than shifting the following audio.
func (c *Client) SplitCut(ctx context.Context) error { return c.bare(ctx, "SplitCut") }

// SplitDelete removes the selection, leaving a gap.
func (c *Client) SplitDelete(ctx context.Context) error { return c.bare(ctx, "SplitDelete") }

// Join merges the selected clips back into one continuous clip.
func (c *Client) Join(ctx context.Context) error { return c.bare(ctx, "Join") }

// Disjoin splits the selection into clips at stretches of silence.
func (c *Client) Disjoin(ctx context.Context) error { return c.bare(ctx, "Disjoin") }

// Trim removes everything outside the selection.
func (c *Client) Trim(ctx context.Context) error { return c.bare(ctx, "Trim") }

// Silence replaces the selection with silence of the same length.
func (c *Client) Silence(ctx context.Context) error { return c.bare(ctx, "Silence") }
