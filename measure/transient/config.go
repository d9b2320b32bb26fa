package transient

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/dsp/spectrum"
	"github.com/cwbudde/algo-transient/dsp/window"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("transient: invalid config")

// Config parameterizes an Evaluator.
type Config struct {
	SampleRate float64 // Hz
	Warmup     int     // samples processed before the switch
	Measure    int     // measurement segment length, power of two

	Initial biquad.Params // in effect during warm-up (actual scenario)
	Target  biquad.Params // in effect after the switch

	ToneFreq float64 // probe tone, Hz
	DCLevel  float64

	// Mask is the inclusive half-spectrum bin range removed before the
	// sideband RMS is taken.
	Mask   spectrum.BinRange
	Window window.Type
	// PeriodicWindow selects the periodic (N denominator) window form
	// instead of the symmetric (N-1) one.
	PeriodicWindow bool

	// Seed drives the noise stimulus.
	Seed int64

	// SentinelEnergy is the DC deviation energy at or below which a run
	// is reported as ideal.
	SentinelEnergy float64
}

// DefaultConfig returns the fixed harness configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:     core.SampleRate,
		Warmup:         core.WarmupLength,
		Measure:        core.MeasureLength,
		Initial:        biquad.Params{Cutoff: core.InitialCutoff, Q: core.InitialQ},
		Target:         biquad.Params{Cutoff: core.TargetCutoff, Q: core.TargetQ},
		ToneFreq:       core.ProbeFrequency,
		DCLevel:        1,
		Mask:           spectrum.BinRange{Lo: core.MaskLowBin, Hi: core.MaskHighBin},
		Window:         window.TypeHann,
		Seed:           1,
		SentinelEnergy: core.SentinelEnergy,
	}
}

// ERBMask returns c.Mask recomputed as one ERB either side of the probe
// tone for c's sample rate and measurement length.
func (c Config) ERBMask() spectrum.BinRange {
	return spectrum.ERBBinRange(c.ToneFreq, 1, c.SampleRate, c.Measure)
}

// DecaySamples returns the 1/e decay time in samples of the slower of the
// initial and target pole pairs. Every topology realizes the same poles.
func (c Config) DecaySamples() float64 {
	initial := biquad.LowpassRBJ(c.Initial, c.SampleRate)
	target := biquad.LowpassRBJ(c.Target, c.SampleRate)
	return math.Max(initial.DecaySamples(), target.DecaySamples())
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0):
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfig, c.SampleRate)
	case c.Warmup < 0:
		return fmt.Errorf("%w: warm-up must be >= 0: %d", ErrInvalidConfig, c.Warmup)
	case c.Measure < 2 || c.Measure&(c.Measure-1) != 0:
		return fmt.Errorf("%w: measurement length must be a power of two >= 2: %d", ErrInvalidConfig, c.Measure)
	case !(c.ToneFreq > 0) || c.ToneFreq >= c.SampleRate/2:
		return fmt.Errorf("%w: tone frequency must be in (0, %v): %v", ErrInvalidConfig, c.SampleRate/2, c.ToneFreq)
	case c.SentinelEnergy < 0:
		return fmt.Errorf("%w: sentinel energy must be >= 0: %v", ErrInvalidConfig, c.SentinelEnergy)
	case !window.Known(c.Window):
		return fmt.Errorf("%w: unknown window: %v", ErrInvalidConfig, c.Window)
	}

	if err := c.validateParams("initial", c.Initial); err != nil {
		return err
	}
	if err := c.validateParams("target", c.Target); err != nil {
		return err
	}
	if err := c.Mask.Validate(c.Measure / 2); err != nil {
		return fmt.Errorf("%w: mask: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) validateParams(name string, p biquad.Params) error {
	if !(p.Q > 0) {
		return fmt.Errorf("%w: %s Q must be > 0: %v", ErrInvalidConfig, name, p.Q)
	}
	if !(p.Cutoff > 0) || float64(p.Cutoff) >= c.SampleRate/2 {
		return fmt.Errorf("%w: %s cutoff must be in (0, %v): %v", ErrInvalidConfig, name, c.SampleRate/2, p.Cutoff)
	}
	return nil
}
