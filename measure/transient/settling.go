package transient

import (
	"math"

	"github.com/cwbudde/algo-transient/dsp/core"
	timestats "github.com/cwbudde/algo-transient/stats/time"
)

// Settling describes how quickly a deviation signal dies out.
type Settling struct {
	Peak    float64 // largest |dev|
	PeakPos int     // first index of Peak
	RMS     float64
	Crest   float64 // Peak / RMS, 0 for an all-zero dev

	// Samples is the length of the prefix after which |dev| stays at or
	// below the threshold (0 if it never exceeds it).
	Samples int
	Millis  float64

	// DecayTime is the time in seconds for the deviation energy to fall by
	// 60 dB, extrapolated from the -5 to -25 dB slope of the backward
	// integrated energy curve. 0 when the curve does not span that range.
	DecayTime float64

	// CenterTime is the energy centroid of the deviation in seconds.
	CenterTime float64
}

// SettlingTime analyses dev sampled at sampleRate.
func SettlingTime(dev []float32, threshold, sampleRate float64) Settling {
	if len(dev) == 0 || sampleRate <= 0 {
		return Settling{}
	}

	wide := core.Widen(nil, dev)
	samples := timestats.LastAbove(wide, threshold) + 1
	st := timestats.Calculate(wide)

	return Settling{
		Peak:       st.Peak,
		PeakPos:    st.PeakPos,
		RMS:        st.RMS,
		Crest:      st.CrestFactor,
		Samples:    samples,
		Millis:     1000 * float64(samples) / sampleRate,
		DecayTime:  decayTime(DecayCurve(dev), -5, -25, sampleRate),
		CenterTime: centerTime(wide, sampleRate),
	}
}

// DecayCurve returns the backward integrated energy of dev in dB relative
// to its total energy:
//
//	S[n] = 10*log10( sum_{k>=n} dev[k]^2 / sum_k dev[k]^2 )
//
// Values are floored at -200 dB. An all-zero dev yields all zeros.
func DecayCurve(dev []float32) []float64 {
	n := len(dev)
	result := make([]float64, n)

	var cumSum float64
	for i := n - 1; i >= 0; i-- {
		v := float64(dev[i])
		cumSum += v * v
		result[i] = cumSum
	}

	if n == 0 || result[0] <= 0 {
		clear(result)
		return result
	}

	total := result[0]
	for i := range result {
		ratio := result[i] / total
		if ratio <= 0 {
			result[i] = -200
		} else {
			result[i] = 10 * math.Log10(ratio)
		}
	}

	return result
}

// decayTime fits a line to curve between startDB and endDB and
// extrapolates it to -60 dB.
func decayTime(curve []float64, startDB, endDB, sampleRate float64) float64 {
	startIdx, endIdx := -1, -1
	for i, v := range curve {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}
		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx <= startIdx {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := startIdx; i <= endIdx; i++ {
		x := float64(i - startIdx)
		y := curve[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	nf := float64(endIdx - startIdx + 1)
	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	// dB per sample
	slope := (nf*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * sampleRate)
}

func centerTime(x []float64, sampleRate float64) float64 {
	var num, den float64
	for i, v := range x {
		e := v * v
		num += float64(i) * e
		den += e
	}
	if den == 0 {
		return 0
	}
	return num / den / sampleRate
}
