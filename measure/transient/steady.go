package transient

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/dsp/signal"
	"github.com/cwbudde/algo-transient/dsp/spectrum"
)

// ToneCheck compares a topology's measured steady-state tone response with
// its analytic transfer function.
type ToneCheck struct {
	Name      string
	Freq      float64 // Hz
	Gain      float64 // measured output/input amplitude
	Phase     float64 // measured phase, radians
	WantGain  float64
	WantPhase float64
	WantDB    float64 // 20*log10(WantGain)
	GainErr   float64 // |Gain-WantGain| / WantGain
	PhaseErr  float64 // wrapped |Phase-WantPhase|, radians
}

// Within reports whether both errors are inside the given tolerances.
func (c ToneCheck) Within(gainTol, phaseTol float64) bool {
	return c.GainErr <= gainTol && c.PhaseErr <= phaseTol
}

// SteadyState drives entry's topology (running at sampleRate) with a unit
// sine at freqHz for length samples at fixed parameters p. It fits
// amplitude and phase over the last whole number of periods in the final
// quarter and compares them with the topology's analytic
// [biquad.TransferFunction]. The topology is reset first.
func SteadyState(entry biquad.Entry, p biquad.Params, freqHz, sampleRate float64, length int) (ToneCheck, error) {
	period := sampleRate / freqHz
	periods := math.Floor(float64(length) / 4 / period)
	if periods < 1 {
		return ToneCheck{}, fmt.Errorf("transient: %d samples too short for a %v Hz steady-state fit", length, freqHz)
	}
	tail := int(math.Round(periods * period))

	gen := signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(sampleRate)},
		signal.WithToneFrequency(freqHz),
	)
	in, err := gen.Stimulus(signal.StimulusTone, length)
	if err != nil {
		return ToneCheck{}, fmt.Errorf("transient: %w", err)
	}

	out := make([]float32, length)
	entry.Filter.Reset()
	entry.Filter.Process(p, in, out)

	gain, phase, err := spectrum.ToneFit(out[length-tail:], freqHz, sampleRate, length-tail)
	if err != nil {
		return ToneCheck{}, fmt.Errorf("transient: %w", err)
	}

	tf := biquad.TransferFunction(entry.Kind, p, sampleRate)
	want := math.Sqrt(tf.MagnitudeSquared(freqHz, sampleRate))
	wantPhase := tf.Phase(freqHz, sampleRate)

	return ToneCheck{
		Name:      entry.Name,
		Freq:      freqHz,
		Gain:      gain,
		Phase:     phase,
		WantGain:  want,
		WantPhase: wantPhase,
		WantDB:    tf.MagnitudeDB(freqHz, sampleRate),
		GainErr:   math.Abs(gain-want) / want,
		PhaseErr:  math.Abs(math.Remainder(phase-wantPhase, 2*math.Pi)),
	}, nil
}
