package audacity

import "context"

// Transport commands control playback and recording. They return once the
// application accepts the command, not when audio finishes.

func (c *Client) Play(ctx context.Context) error  { return c.bare(ctx, "Play") }
func (c *Client) Stop(ctx context.Context) error  { return c.bare(ctx, "Stop") }
func (c *Client) Pause(ctx context.Context) error { return c.bare(ctx, "Pause") }

// PlayStop toggles between playing and stopped.
func (c *Client) PlayStop(ctx context.Context) error { return c.bare(ctx, "PlayStop") }

// Record starts recording on the existing track, the application's
// first-choice binding.
func (c *Client) Record(ctx context.Context) error { return c.bare(ctx, "Record1stChoice") }

// RecordNewTrack starts recording on a fresh track.
func (c *Client) RecordNewTrack(ctx context.Context) error { return c.bare(ctx, "Record2ndChoice") }
