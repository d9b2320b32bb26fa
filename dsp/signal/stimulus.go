package signal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLength is returned when a stimulus of non-positive length is
// requested.
var ErrInvalidLength = errors.New("signal: stimulus length must be > 0")

// StimulusKind selects the excitation driven through a filter.
type StimulusKind int

const (
	// StimulusDC is a constant level.
	StimulusDC StimulusKind = iota
	// StimulusTone is a sine at the probe frequency with phase 0 at sample 0.
	StimulusTone
	// StimulusNoise is seeded white noise with peak 1.
	StimulusNoise
)

// String returns a lower-case name for k.
func (k StimulusKind) String() string {
	switch k {
	case StimulusDC:
		return "dc"
	case StimulusTone:
		return "tone"
	case StimulusNoise:
		return "noise"
	default:
		return fmt.Sprintf("StimulusKind(%d)", int(k))
	}
}

// Stimulus returns a fresh single-precision buffer of length samples. The
// tone phase is computed in float64 and rounded per sample so that long
// buffers do not accumulate phase error.
func (g *Generator) Stimulus(kind StimulusKind, length int) ([]float32, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	out := make([]float32, length)
	switch kind {
	case StimulusDC:
		level := float32(g.dcLevel)
		for i := range out {
			out[i] = level
		}
	case StimulusTone:
		if g.cfg.SampleRate <= 0 {
			return nil, fmt.Errorf("signal: tone sample rate must be > 0: %f", g.cfg.SampleRate)
		}
		step := 2 * math.Pi * g.toneFreq / g.cfg.SampleRate
		for i := range out {
			out[i] = float32(math.Sin(step * float64(i)))
		}
	case StimulusNoise:
		noise, err := g.WhiteNoise(1, length)
		if err != nil {
			return nil, fmt.Errorf("signal: %w", err)
		}
		for i, v := range noise {
			out[i] = float32(v)
		}
	default:
		return nil, fmt.Errorf("signal: unknown stimulus %v", kind)
	}
	return out, nil
}
