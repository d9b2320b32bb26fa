package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Energy_dB      float64 // 10*log10(Energy)
	Variance       float64 // population variance
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// powTodB converts a power value to decibels: 10 * log10(value).
// Returns -Inf for zero values.
func powTodB(value float64) float64 {
	if value <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(value)
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
		Energy_dB:      math.Inf(-1),
	}
}

// Calculate computes all time-domain statistics of signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	energy := Energy(signal)
	rms := math.Sqrt(energy / float64(n))
	peak, peakPos := PeakAt(signal)
	mean, variance := stat.PopMeanVariance(signal, nil)

	var crest, crestdB float64
	if rms > 0 {
		crest = peak / rms
		crestdB = 20 * math.Log10(crest)
	}

	return Stats{
		Length:         n,
		DC:             mean,
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Peak:           peak,
		PeakPos:        peakPos,
		Peak_dB:        ampTodB(peak),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		Energy:         energy,
		Energy_dB:      powTodB(energy),
		Variance:       variance,
	}
}

// Energy returns the sum of squares of signal (its squared l2 norm).
func Energy(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return floats.Dot(signal, signal)
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(Energy(signal) / float64(len(signal)))
}


// Variance returns the population variance (divisor N) of the signal.
func Variance(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return stat.PopVariance(signal, nil)
}


// PeakAt returns the peak absolute amplitude and its first index, or
// (0, -1) for an empty signal.
func PeakAt(signal []float64) (float64, int) {
	if len(signal) == 0 {
		return 0, -1
	}

	peak := math.Abs(signal[0])
	pos := 0
	for i, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
			pos = i + 1
		}
	}

	return peak, pos
}


// LastAbove returns the index of the last sample whose magnitude exceeds
// threshold, or -1 if none does.
func LastAbove(signal []float64, threshold float64) int {
	for i := len(signal) - 1; i >= 0; i-- {
		if math.Abs(signal[i]) > threshold {
			return i
		}
	}

	return -1
}
