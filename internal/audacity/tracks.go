package audacity

import (
	"context"
	"encoding/json"
	"fmt"
)

// TrackInfo is one track as reported by GetInfo. Flag fields are 0 or 1,
// matching the application's JSON.
type TrackInfo struct {
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Pan      float64 `json:"pan"`
	Gain     float64 `json:"gain"`
	Channels int     `json:"channels"`
	Selected int     `json:"selected"`
	Focused  int     `json:"focused"`
	Solo     int     `json:"solo"`
	Mute     int     `json:"mute"`
}

// Tracks reports every track in the current project.
func (c *Client) Tracks(ctx context.Context) ([]TrackInfo, error) {
	res, err := c.run(ctx, "GetInfo", map[string]any{
		"Type":   InfoTracks,
		"Format": FormatJSON,
	})
	if err != nil {
		return nil, err
	}
	var tracks []TrackInfo
	if err := json.Unmarshal([]byte(res.Payload), &tracks); err != nil {
		return nil, fmt.Errorf("decode track info: %w", err)
	}
	return tracks, nil
}

func (c *Client) NewMonoTrack(ctx context.Context) error   { return c.bare(ctx, "NewMonoTrack") }
func (c *Client) NewStereoTrack(ctx context.Context) error { return c.bare(ctx, "NewStereoTrack") }
func (c *Client) NewLabelTrack(ctx context.Context) error  { return c.bare(ctx, "NewLabelTrack") }
func (c *Client) NewTimeTrack(ctx context.Context) error   { return c.bare(ctx, "NewTimeTrack") }

// RemoveTracks deletes the selected tracks.
func (c *Client) RemoveTracks(ctx context.Context) error { return c.bare(ctx, "RemoveTracks") }

// StereoToMono converts selected stereo tracks to mono by averaging the
// channels.
func (c *Client) StereoToMono(ctx context.Context) error { return c.bare(ctx, "Stereo to Mono") }

// MixAndRender mixes the selected tracks down to one, rendering real-time
// transformations like gain and envelopes into the waveform.
func (c *Client) MixAndRender(ctx context.Context) error { return c.bare(ctx, "MixAndRender") }

// MixAndRenderToNewTrack does the same but keeps the originals.
func (c *Client) MixAndRenderToNewTrack(ctx context.Context) error {
	return c.bare(ctx, "MixAndRenderToNewTrack")
}

func (c *Client) MuteAllTracks(ctx context.Context) error   { return c.bare(ctx, "MuteAllTracks") }
func (c *Client) UnmuteAllTracks(ctx context.Context) error { return c.bare(ctx, "UnmuteAllTracks") }
