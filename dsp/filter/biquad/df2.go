package biquad

// DF2 is a Direct Form II realization of the RBJ low-pass. Its two registers
// hold past values of the intermediate signal
//
//	w[n] = x[n] - a1*w[n-1] - a2*w[n-2]
//	y[n] = b0*w[n] + b1*w[n-1] + b2*w[n-2]
//
// w scales with 1/A(z), so at low cutoffs the registers are large and a
// coefficient switch rescales their contribution to the output abruptly.
type DF2 struct {
	fs     float32
	w1, w2 float32
}

// NewDF2 returns a zero-state DF2 filter running at sampleRate.
func NewDF2(sampleRate float32) *DF2 {
	return &DF2{fs: sampleRate}
}

// Reset zeroes the delay registers.
func (f *DF2) Reset() {
	f.w1, f.w2 = 0, 0
}

// Process filters in into out. See [Topology].
func (f *DF2) Process(p Params, in, out []float32) {
	if len(in) == 0 {
		return
	}
	c := lowpassRBJ32(p, f.fs)
	w1, w2 := f.w1, f.w2

	_ = out[len(in)-1] // bounds check hint
	for n, x := range in {
		wn := x - c.a1*w1 - c.a2*w2
		out[n] = c.b0*wn + c.b1*w1 + c.b2*w2
		w2 = w1
		w1 = wn
	}

	f.w1, f.w2 = w1, w2
}

// State returns [w[n-1], w[n-2]].
func (f *DF2) State() [2]float32 {
	return [2]float32{f.w1, f.w2}
}

// SetState restores a previously saved state.
func (f *DF2) SetState(state [2]float32) {
	f.w1, f.w2 = state[0], state[1]
}
