package biquad

import "math"

// SVF is a trapezoidal-integrator (TPT) state-variable filter with the
// low-pass taken from the second integrator. With g = tan(π fc/fs),
// R = 1/(2Q) and h = 1/(g² + 2Rg + 1):
//
//	v1 = g h u + h s1 - g h s2
//	v2 = g² h u + g h s1 + h (1 + 2Rg) s2
//	s1 += 2g (u - 2R v1 - v2)
//	s2 += 2g v1
//	y  = v2
//
// s1 and s2 are integrator contents, so the output stays continuous when g
// or R jump.
type SVF struct {
	fs     float32
	s1, s2 float32
}

// NewSVF returns a zero-state SVF running at sampleRate.
func NewSVF(sampleRate float32) *SVF {
	return &SVF{fs: sampleRate}
}

// Reset zeroes both integrators.
func (f *SVF) Reset() {
	f.s1, f.s2 = 0, 0
}

// Process filters in into out. See [Topology].
func (f *SVF) Process(p Params, in, out []float32) {
	if len(in) == 0 {
		return
	}
	g := float32(math.Tan(float64(float32(math.Pi * float64(p.Cutoff) / float64(f.fs)))))
	r := 1 / (2 * p.Q)
	h := 1 / (g*g + 2*r*g + 1)

	gh := g * h
	ggh := g * g * h
	damp := h * (1 + 2*r*g)

	s1, s2 := f.s1, f.s2

	_ = out[len(in)-1] // bounds check hint
	for n, u := range in {
		v1 := gh*u + h*s1 - gh*s2
		v2 := ggh*u + gh*s1 + damp*s2

		s1 += 2 * g * (u - 2*r*v1 - v2)
		s2 += 2 * g * v1

		out[n] = v2
	}

	f.s1, f.s2 = s1, s2
}

// State returns the integrator contents [s1, s2].
func (f *SVF) State() [2]float32 {
	return [2]float32{f.s1, f.s2}
}

// SetState restores a previously saved state.
func (f *SVF) SetState(state [2]float32) {
	f.s1, f.s2 = state[0], state[1]
}
