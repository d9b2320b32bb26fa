package transient

import (
	"fmt"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/dsp/signal"
	"github.com/cwbudde/algo-transient/dsp/spectrum"
	"github.com/cwbudde/algo-transient/dsp/window"
	"github.com/cwbudde/algo-transient/internal/vecmath"
)

// Evaluator runs the actual and ideal scenarios and reduces their
// deviation to metrics. Buffers and the FFT plan are allocated once.
type Evaluator struct {
	cfg Config
	gen *signal.Generator
	fft *spectrum.RealFFT
	win []float64

	discard []float32 // warm-up output
	actual  []float32
	ideal   []float32
	dev     []float32
	wide    []float64
	mag     []float64
}

// NewEvaluator validates cfg and allocates the evaluator's scratch.
func NewEvaluator(cfg Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fft, err := spectrum.NewRealFFT(cfg.Measure)
	if err != nil {
		return nil, fmt.Errorf("transient: %w", err)
	}

	gen := signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate), core.WithBlockSize(cfg.Measure)},
		signal.WithDCLevel(cfg.DCLevel),
		signal.WithToneFrequency(cfg.ToneFreq),
		signal.WithSeed(cfg.Seed),
	)

	var winOpts []window.Option
	if cfg.PeriodicWindow {
		winOpts = append(winOpts, window.WithPeriodic())
	}

	return &Evaluator{
		cfg:     cfg,
		gen:     gen,
		fft:     fft,
		win:     window.Generate(cfg.Window, cfg.Measure, winOpts...),
		discard: make([]float32, cfg.Warmup),
		actual:  make([]float32, cfg.Measure),
		ideal:   make([]float32, cfg.Measure),
		dev:     make([]float32, cfg.Measure),
		wide:    make([]float64, cfg.Measure),
		mag:     make([]float64, fft.Bins()),
	}, nil
}

// Config returns the evaluator's configuration.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Stimulus returns a fresh warm-up + measurement buffer of the given kind.
func (e *Evaluator) Stimulus(kind signal.StimulusKind) ([]float32, error) {
	return e.gen.Stimulus(kind, e.cfg.Warmup+e.cfg.Measure)
}

// RunActual resets t, warms it up on in[:Warmup] at the initial parameters
// and returns its output for in[Warmup:Warmup+Measure] at the target
// parameters. in must hold at least Warmup+Measure samples. The returned
// slice is reused by the next RunActual call.
func (e *Evaluator) RunActual(t biquad.Topology, in []float32) []float32 {
	return e.run(t, e.cfg.Initial, in, e.actual)
}

// RunIdeal is RunActual with the target parameters in effect throughout.
// The returned slice is reused by the next RunIdeal call.
func (e *Evaluator) RunIdeal(t biquad.Topology, in []float32) []float32 {
	return e.run(t, e.cfg.Target, in, e.ideal)
}

func (e *Evaluator) run(t biquad.Topology, warm biquad.Params, in, out []float32) []float32 {
	w := e.cfg.Warmup
	t.Reset()
	t.Process(warm, in[:w], e.discard)
	t.Process(e.cfg.Target, in[w:w+e.cfg.Measure], out)
	return out
}

// Deviation writes actual - ideal into dst and returns dst[:len(actual)].
// dst is grown if needed.
func Deviation(dst, actual, ideal []float32) []float32 {
	dst = core.EnsureLen(dst, len(actual))
	vecmath.SubBlock(dst, actual, ideal)
	return dst
}

// Trace holds one topology's raw scenario signals.
type Trace struct {
	Stimulus  []float32 // warm-up + measurement
	Actual    []float32 // measurement segment
	Ideal     []float32 // measurement segment
	Deviation []float32
}

// Scenario runs both scenarios for t on a fresh stimulus and returns
// copies of every signal.
func (e *Evaluator) Scenario(t biquad.Topology, kind signal.StimulusKind) (Trace, error) {
	in, err := e.Stimulus(kind)
	if err != nil {
		return Trace{}, fmt.Errorf("transient: %w", err)
	}

	actual := append([]float32(nil), e.RunActual(t, in)...)
	ideal := append([]float32(nil), e.RunIdeal(t, in)...)

	return Trace{
		Stimulus:  in,
		Actual:    actual,
		Ideal:     ideal,
		Deviation: Deviation(nil, actual, ideal),
	}, nil
}

// scenario runs both scenarios into the evaluator's own buffers and
// leaves the deviation in e.dev. It panics if the stimulus cannot be
// generated, which NewEvaluator's validation rules out for the DC and
// tone kinds.
func (e *Evaluator) scenario(t biquad.Topology, kind signal.StimulusKind) {
	in, err := e.Stimulus(kind)
	if err != nil {
		panic(fmt.Sprintf("transient: %v", err))
	}
	actual := e.RunActual(t, in)
	ideal := e.RunIdeal(t, in)
	e.dev = Deviation(e.dev, actual, ideal)
}
