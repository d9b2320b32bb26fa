package biquad

import "math"

// Coefficients holds normalized second-order transfer function coefficients
// (a0 = 1):
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// LowpassRBJ returns the RBJ cookbook low-pass for p in float64.
func LowpassRBJ(p Params, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * float64(p.Cutoff) / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * float64(p.Q))

	a0 := 1 + alpha
	return Coefficients{
		B0: (1 - cw) / 2 / a0,
		B1: (1 - cw) / a0,
		B2: (1 - cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}

// rbj32 holds the single-precision RBJ low-pass used by DF2 and TDF2RC.
type rbj32 struct {
	b0, b1, b2 float32
	a1, a2     float32
}

// lowpassRBJ32 derives the RBJ low-pass in single precision, the way the
// runtime filters compute it on every call.
func lowpassRBJ32(p Params, fs float32) rbj32 {
	w0 := float32(2 * math.Pi * float64(p.Cutoff) / float64(fs))
	cw := float32(math.Cos(float64(w0)))
	sw := float32(math.Sin(float64(w0)))
	alpha := sw / (2 * p.Q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return rbj32{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// Coefficients widens c for analysis.
func (c rbj32) Coefficients() Coefficients {
	return Coefficients{
		B0: float64(c.b0), B1: float64(c.b1), B2: float64(c.b2),
		A1: float64(c.a1), A2: float64(c.a2),
	}
}
