package biquad

// TDF2RC realizes the RBJ low-pass in transposed Direct Form II. Both
// registers accumulate partial sums of the output recursion:
//
//	y[n]  = b0 x[n] + s1
//	s1   <- b1 x[n] - a1 y[n] + s2
//	s2   <- b2 x[n] - a2 y[n]
//
// Coefficients are renormalized by a0 on every call. The steady-state
// response equals [DF2]; the registers live on the output scale instead of
// the 1/A(z) scale, which changes rounding and switch behaviour.
type TDF2RC struct {
	fs     float32
	s1, s2 float32
}

// NewTDF2RC returns a zero-state transposed filter running at sampleRate.
func NewTDF2RC(sampleRate float32) *TDF2RC {
	return &TDF2RC{fs: sampleRate}
}

// Reset zeroes both accumulators.
func (f *TDF2RC) Reset() {
	f.s1, f.s2 = 0, 0
}

// Process filters in into out. See [Topology].
func (f *TDF2RC) Process(p Params, in, out []float32) {
	if len(in) == 0 {
		return
	}
	c := lowpassRBJ32(p, f.fs)
	s1, s2 := f.s1, f.s2

	_ = out[len(in)-1] // bounds check hint
	for n, x := range in {
		y := c.b0*x + s1
		next1 := c.b1*x - c.a1*y + s2
		next2 := c.b2*x - c.a2*y
		s1, s2 = next1, next2
		out[n] = y
	}

	f.s1, f.s2 = s1, s2
}

// State returns the accumulators [s1, s2].
func (f *TDF2RC) State() [2]float32 {
	return [2]float32{f.s1, f.s2}
}

// SetState restores a previously saved state.
func (f *TDF2RC) SetState(state [2]float32) {
	f.s1, f.s2 = state[0], state[1]
}
