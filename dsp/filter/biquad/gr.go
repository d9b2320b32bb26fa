package biquad

import "math"

// grEpsilon keeps the gain normalization finite when sin(w0) underflows
// for cutoffs near zero.
const grEpsilon = 1e-20

// GR is a coupled-form (Gold-Rader) resonator. The pole r*e^{jθ} with
// r = exp(-w0/(2Q)) and θ = w0 rotates a two-state phasor:
//
//	x1[n] = a*x1[n-1] - b*x2[n-1] + u[n]
//	x2[n] = b*x1[n-1] + a*x2[n-1]
//	y[n]  = g * x2[n]
//
// with a = r cos θ, b = r sin θ and g = (1 - 2a + r^2) / (b + ε) for unity DC
// gain. The response is all-pole, so it only approximates the RBJ
// low-pass around the cutoff.
type GR struct {
	fs     float32
	x1, x2 float32
}

// NewGR returns a zero-state coupled-form filter running at sampleRate.
func NewGR(sampleRate float32) *GR {
	return &GR{fs: sampleRate}
}

// Reset zeroes the phasor.
func (f *GR) Reset() {
	f.x1, f.x2 = 0, 0
}

type gr32 struct {
	r, a, b, gain float32
}

func coupledForm32(p Params, fs float32) gr32 {
	w0 := float32(2 * math.Pi * float64(p.Cutoff) / float64(fs))
	r := float32(math.Exp(float64(-w0 / (2 * p.Q))))
	a := r * float32(math.Cos(float64(w0)))
	b := r * float32(math.Sin(float64(w0)))
	return gr32{
		r:    r,
		a:    a,
		b:    b,
		gain: (1 - 2*a + r*r) / (b + grEpsilon),
	}
}

// Process filters in into out. See [Topology].
func (f *GR) Process(p Params, in, out []float32) {
	if len(in) == 0 {
		return
	}
	c := coupledForm32(p, f.fs)
	x1, x2 := f.x1, f.x2

	_ = out[len(in)-1] // bounds check hint
	for n, u := range in {
		next1 := c.a*x1 - c.b*x2 + u
		next2 := c.b*x1 + c.a*x2
		x1, x2 = next1, next2
		out[n] = x2 * c.gain
	}

	f.x1, f.x2 = x1, x2
}

// State returns the phasor [x1, x2].
func (f *GR) State() [2]float32 {
	return [2]float32{f.x1, f.x2}
}

// SetState restores a previously saved state.
func (f *GR) SetState(state [2]float32) {
	f.x1, f.x2 = state[0], state[1]
}
