package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a single-precision sine wave with phase 0 at
// sample 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ToneFit estimates amplitude and phase of a sinusoid at freqHz in x by
// correlating against sin and cos. offset is the index of x[0] on the
// reference sine's time axis. x should span an integer number of periods.
// The phase is relative to sin(2*pi*f*n/fs).
func ToneFit(x []float32, freqHz, sampleRate float64, offset int) (amplitude, phase float64) {
	if len(x) == 0 {
		return 0, 0
	}
	step := 2 * math.Pi * freqHz / sampleRate
	var s, c float64
	for i, v := range x {
		arg := step * float64(offset+i)
		s += float64(v) * math.Sin(arg)
		c += float64(v) * math.Cos(arg)
	}
	n := float64(len(x))
	return 2 * math.Hypot(s, c) / n, math.Atan2(c, s)
}
