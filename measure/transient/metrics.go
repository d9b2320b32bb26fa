package transient

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/dsp/signal"
	"github.com/cwbudde/algo-transient/dsp/window"
	"github.com/cwbudde/algo-transient/internal/vecmath"
	timestats "github.com/cwbudde/algo-transient/stats/time"
)

// DCResult is the DC-stimulus metric.
type DCResult struct {
	Energy float64 // sum of squared deviation
	DB     float64 // 10*log10(Energy), -Inf when Ideal
	Ideal  bool    // Energy <= SentinelEnergy
}

// ACResult is the tone-stimulus metric pair.
type ACResult struct {
	Variance    float64 // population variance of the deviation
	SidebandRMS float64 // RMS of the masked half spectrum of the windowed actual output
}

// EvaluateDC runs both scenarios on a DC stimulus and returns the
// deviation energy.
func (e *Evaluator) EvaluateDC(t biquad.Topology) DCResult {
	e.scenario(t, signal.StimulusDC)
	return e.dcResult(e.dev)
}

func (e *Evaluator) dcResult(dev []float32) DCResult {
	energy := float64(vecmath.Energy(dev))
	if energy <= e.cfg.SentinelEnergy {
		return DCResult{Energy: energy, DB: math.Inf(-1), Ideal: true}
	}
	return DCResult{Energy: energy, DB: core.LinearPowerToDB(energy)}
}

// EvaluateAC runs both scenarios on the probe tone and returns the
// deviation variance and the sideband RMS of the actual output.
func (e *Evaluator) EvaluateAC(t biquad.Topology) ACResult {
	e.scenario(t, signal.StimulusTone)

	e.wide = core.Widen(e.wide, e.dev)
	variance := timestats.Variance(e.wide)

	return ACResult{
		Variance:    variance,
		SidebandRMS: e.sidebandRMS(e.actual),
	}
}

// sidebandRMS windows actual (the window is applied to the actual output
// only), takes the half-spectrum magnitude, masks the probe band and
// returns the RMS of what is left. actual must be Measure samples long;
// anything else is a programming error and panics.
func (e *Evaluator) sidebandRMS(actual []float32) float64 {
	e.wide = core.Widen(e.wide, actual)
	if err := window.ApplyCoefficientsInPlace(e.wide, e.win); err != nil {
		panic(fmt.Sprintf("transient: sideband window: %v", err))
	}
	if err := e.fft.Magnitude(e.mag, e.wide); err != nil {
		panic(fmt.Sprintf("transient: sideband spectrum: %v", err))
	}
	e.cfg.Mask.Zero(e.mag)
	return timestats.RMS(e.mag)
}
