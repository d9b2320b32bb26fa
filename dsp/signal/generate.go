package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-transient/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg      core.ProcessorConfig
	seed     int64
	dcLevel  float64
	toneFreq float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithDCLevel sets the constant value of the DC stimulus.
func WithDCLevel(level float64) Option {
	return func(g *Generator) {
		g.dcLevel = level
	}
}

// WithToneFrequency sets the frequency of the tone stimulus in Hz.
func WithToneFrequency(freqHz float64) Option {
	return func(g *Generator) {
		g.toneFreq = freqHz
	}
}

// NewGenerator creates a signal generator from processor and
// signal-specific options. Noise uses seed 1 unless WithSeed is given.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:      core.ApplyProcessorOptions(coreOpts...),
		seed:     1,
		dcLevel:  1,
		toneFreq: core.ProbeFrequency,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
// It also returns the applied scale factor (0 for silent input).
func Normalize(data []float64, targetPeak float64) ([]float64, float64, error) {
	if targetPeak < 0 {
		return nil, 0, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, 0, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, scale, nil
}
