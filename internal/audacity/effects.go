package audacity

import "context"

// Effects apply to the current selection.

// Amplify scales the selection by ratio (1.0 is unchanged). The
// application refuses ratios that would clip unless allowClipping is set.
func (c *Client) Amplify(ctx context.Context, ratio float64, allowClipping bool) error {
	_, err := c.run(ctx, "Amplify", map[string]any{
		"Ratio":         ratio,
		"AllowClipping": allowClipping,
	})
	return err
}

// NormalizeOptions shape Normalize. PeakLevel is in dB.
type NormalizeOptions struct {
	PeakLevel         float64
	ApplyGain         bool
	RemoveDCOffset    bool
	StereoIndependent bool
}

func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{PeakLevel: -1, ApplyGain: true, RemoveDCOffset: true}
}

func (c *Client) Normalize(ctx context.Context, opts NormalizeOptions) error {
	_, err := c.run(ctx, "Normalize", map[string]any{
		"PeakLevel":         opts.PeakLevel,
		"ApplyGain":         opts.ApplyGain,
		"RemoveDcOffset":    opts.RemoveDCOffset,
		"StereoIndependent": opts.StereoIndependent,
	})
	return err
}

// CompressorOptions shape the dynamic range compressor. Levels are in dB,
// times in seconds.
type CompressorOptions struct {
	Threshold   float64
	NoiseFloor  float64
	Ratio       float64
	AttackTime  float64
	ReleaseTime float64
	Normalize   bool
	UsePeak     bool
}

func DefaultCompressorOptions() CompressorOptions {
	return CompressorOptions{
		Threshold:   -12,
		NoiseFloor:  -40,
		Ratio:       2,
		AttackTime:  0.2,
		ReleaseTime: 1,
		Normalize:   true,
	}
}

func (c *Client) Compressor(ctx context.Context, opts CompressorOptions) error {
	_, err := c.run(ctx, "Compressor", map[string]any{
		"Threshold":   opts.Threshold,
		"NoiseFloor":  opts.NoiseFloor,
		"Ratio":       opts.Ratio,
		"AttackTime":  opts.AttackTime,
		"ReleaseTime": opts.ReleaseTime,
		"Normalize":   opts.Normalize,
		"UsePeak":     opts.UsePeak,
	})
	return err
}

// Echo repeats the selection fading by decay every delay seconds.
func (c *Client) Echo(ctx context.Context, delay, decay float64) error {
	_, err := c.run(ctx, "Echo", map[string]any{"Delay": delay, "Decay": decay})
	return err
}

// ReverbOptions shape the reverb effect. Most values are percentages;
// gains are in dB.
type ReverbOptions struct {
	RoomSize     float64
	Delay        float64
	Reverberance float64
	HfDamping    float64
	ToneLow      float64
	ToneHigh     float64
	WetGain      float64
	DryGain      float64
	StereoWidth  float64
	WetOnly      bool
}

func DefaultReverbOptions() ReverbOptions {
	return ReverbOptions{
		RoomSize:     75,
		Delay:        10,
		Reverberance: 50,
		HfDamping:    50,
		ToneLow:      100,
		ToneHigh:     100,
		WetGain:      -1,
		DryGain:      -1,
		StereoWidth:  100,
	}
}

func (c *Client) Reverb(ctx context.Context, opts ReverbOptions) error {
	_, err := c.run(ctx, "Reverb", map[string]any{
		"RoomSize":     opts.RoomSize,
		"Delay":        opts.Delay,
		"Reverberance": opts.Reverberance,
		"HfDamping":    opts.HfDamping,
		"ToneLow":      opts.ToneLow,
		"ToneHigh":     opts.ToneHigh,
		"WetGain":      opts.WetGain,
		"DryGain":      opts.DryGain,
		"StereoWidth":  opts.StereoWidth,
		"WetOnly":      opts.WetOnly,
	})
	return err
}

// ChangePitch shifts pitch by a percentage without changing tempo. SBSMS
// selects the slower, higher quality stretcher.
func (c *Client) ChangePitch(ctx context.Context, percentage float64, sbsms bool) error {
	_, err := c.run(ctx, "ChangePitch", map[string]any{
		"Percentage": percentage,
		"SBSMS":      sbsms,
	})
	return err
}

// ChangeSpeed changes speed by a percentage, shifting pitch with it.
func (c *Client) ChangeSpeed(ctx context.Context, percentage float64) error {
	_, err := c.run(ctx, "ChangeSpeed", map[string]any{"Percentage": percentage})
	return err
}

// ChangeTempo changes tempo by a percentage without shifting pitch.
func (c *Client) ChangeTempo(ctx context.Context, percentage float64, sbsms bool) error {
	_, err := c.run(ctx, "ChangeTempo", map[string]any{
		"Percentage": percentage,
		"SBSMS":      sbsms,
	})
	return err
}

// Repeat appends count copies of the selection.
func (c *Client) Repeat(ctx context.Context, count int) error {
	_, err := c.run(ctx, "Repeat", map[string]any{"Count": count})
	return err
}

func (c *Client) FadeIn(ctx context.Context) error  { return c.bare(ctx, "FadeIn") }
func (c *Client) FadeOut(ctx context.Context) error { return c.bare(ctx, "FadeOut") }
func (c *Client) Invert(ctx context.Context) error  { return c.bare(ctx, "Invert") }
func (c *Client) Reverse(ctx context.Context) error { return c.bare(ctx, "Reverse") }

// Repair fixes a very short stretch of damaged audio by interpolation.
func (c *Client) Repair(ctx context.Context) error { return c.bare(ctx, "Repair") }
