package audacity

import "context"

// Waveform shapes for the tone and chirp generators.
type Waveform string

const (
	WaveformSine          Waveform = "Sine"
	WaveformSquare        Waveform = "Square"
	WaveformSawtooth      Waveform = "Sawtooth"
	WaveformSquareNoAlias Waveform = "Square, no alias"
	WaveformTriangle      Waveform = "Triangle"
)

// Interpolation is the frequency sweep curve of a chirp.
type Interpolation string

const (
	InterpolationLinear      Interpolation = "Linear"
	InterpolationLogarithmic Interpolation = "Logarithmic"
)

// NoiseType selects the noise generator's spectrum.
type NoiseType string

const (
	NoiseWhite    NoiseType = "White"
	NoisePink     NoiseType = "Pink"
	NoiseBrownian NoiseType = "Brownian"
)

// PluckFade is the release shape of a plucked note.
type PluckFade string

const (
	PluckAbrupt  PluckFade = "Abrupt"
	PluckGradual PluckFade = "Gradual"
)

// ClickType is the rhythm track beat sound. The application's UI shows
// labels like "metronome tick"; these are the wire spellings it accepts.
type ClickType string

const (
	ClickMetronome     ClickType = "Metronome"
	ClickPingShort     ClickType = "Ping (short)"
	ClickPingLong      ClickType = "Ping (long)"
	ClickCowbell       ClickType = "Cowbell"
	ClickResonantNoise ClickType = "ResonantNoise"
	ClickNoiseClick    ClickType = "NoiseClick"
	ClickDripShort     ClickType = "Drip (short)"
	ClickDripLong      ClickType = "Drip (long)"
)

// Generators replace the current selection; the selection length sets the
// generated duration unless the options carry one.

// ChirpOptions shape the frequency sweep. Amplitudes are linear in [0, 1].
type ChirpOptions struct {
	StartFreq     float64
	EndFreq       float64
	StartAmp      float64
	EndAmp        float64
	Waveform      Waveform
	Interpolation Interpolation
}

func DefaultChirpOptions() ChirpOptions {
	return ChirpOptions{
		StartFreq:     440,
		EndFreq:       1320,
		StartAmp:      0.8,
		EndAmp:        0.1,
		Waveform:      WaveformSine,
		Interpolation: InterpolationLinear,
	}
}

func (c *Client) Chirp(ctx context.Context, opts ChirpOptions) error {
	_, err := c.run(ctx, "Chirp", map[string]any{
		"StartFreq":     opts.StartFreq,
		"EndFreq":       opts.EndFreq,
		"StartAmp":      opts.StartAmp,
		"EndAmp":        opts.EndAmp,
		"Waveform":      opts.Waveform,
		"Interpolation": opts.Interpolation,
	})
	return err
}

// ToneOptions shape a steady tone.
type ToneOptions struct {
	Frequency float64
	Amplitude float64
	Waveform  Waveform
}

func DefaultToneOptions() ToneOptions {
	return ToneOptions{Frequency: 440, Amplitude: 0.8, Waveform: WaveformSine}
}

func (c *Client) Tone(ctx context.Context, opts ToneOptions) error {
	_, err := c.run(ctx, "Tone", map[string]any{
		"Frequency": opts.Frequency,
		"Amplitude": opts.Amplitude,
		"Waveform":  opts.Waveform,
	})
	return err
}

// Noise fills the selection with noise. Amplitude is linear in [0, 1].
func (c *Client) Noise(ctx context.Context, noiseType NoiseType, amplitude float64) error {
	_, err := c.run(ctx, "Noise", map[string]any{
		"Type":      noiseType,
		"Amplitude": amplitude,
	})
	return err
}

// PluckOptions shape a plucked note. Pitch is a MIDI note number and the
// duration is capped at 60 seconds by the generator.
type PluckOptions struct {
	Pitch    int
	Fade     PluckFade
	Duration float64
}

func DefaultPluckOptions() PluckOptions {
	return PluckOptions{Pitch: 60, Fade: PluckAbrupt, Duration: 1}
}

func (c *Client) Pluck(ctx context.Context, opts PluckOptions) error {
	_, err := c.run(ctx, "Pluck", map[string]any{
		"pitch": opts.Pitch,
		"fade":  opts.Fade,
		"dur":   opts.Duration,
	})
	return err
}

// RhythmTrackOptions shape a click track. High and Low are the MIDI pitches
// of the strong and weak beats.
type RhythmTrackOptions struct {
	Tempo         float64
	TimeSignature int
	Swing         float64
	Bars          int
	ClickDuration float64
	Offset        float64
	ClickType     ClickType
	High          int
	Low           int
}

func DefaultRhythmTrackOptions() RhythmTrackOptions {
	return RhythmTrackOptions{
		Tempo:         120,
		TimeSignature: 4,
		Bars:          16,
		ClickType:     ClickMetronome,
		High:          84,
	}
}

func (c *Client) RhythmTrack(ctx context.Context, opts RhythmTrackOptions) error {
	_, err := c.run(ctx, "RhythmTrack", map[string]any{
		"tempo":           opts.Tempo,
		"timesig":         opts.TimeSignature,
		"swing":           opts.Swing,
		"bars":            opts.Bars,
		"click-track-dur": opts.ClickDuration,
		"offset":          opts.Offset,
		"click-type":      opts.ClickType,
		"high":            opts.High,
		"low":             opts.Low,
	})
	return err
}

// RissetDrumOptions shape the Risset drum generator.
type RissetDrumOptions struct {
	Frequency       float64
	Decay           float64
	CenterFrequency float64
	Bandwidth       float64
	NoiseMix        float64
	Gain            float64
}

func (c *Client) RissetDrum(ctx context.Context, opts RissetDrumOptions) error {
	_, err := c.run(ctx, "RissetDrum", map[string]any{
		"freq":  opts.Frequency,
		"decay": opts.Decay,
		"cf":    opts.CenterFrequency,
		"bw":    opts.Bandwidth,
		"noise": opts.NoiseMix,
		"gain":  opts.Gain,
	})
	return err
}
