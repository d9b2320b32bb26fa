package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of c at the
// given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// TransferFunction returns the exact float64 transfer function realized by
// kind k for parameters p. DF2 and TDF2RC realize the RBJ low-pass; SVF
// realizes the bilinear (TPT) low-pass, which is the same polynomial; GR
// realizes the all-pole coupled form g*b*z^-1 / (1 - 2a z^-1 + r^2 z^-2).
func TransferFunction(k Kind, p Params, sampleRate float64) Coefficients {
	switch k {
	case KindSVF:
		return lowpassTPT(p, sampleRate)
	case KindGR:
		return coupledForm(p, sampleRate)
	default:
		return LowpassRBJ(p, sampleRate)
	}
}

func lowpassTPT(p Params, sampleRate float64) Coefficients {
	g := math.Tan(math.Pi * float64(p.Cutoff) / sampleRate)
	k := 1 / float64(p.Q)
	gg := g * g

	a0 := 1 + g*k + gg
	return Coefficients{
		B0: gg / a0,
		B1: 2 * gg / a0,
		B2: gg / a0,
		A1: (2*gg - 2) / a0,
		A2: (1 - g*k + gg) / a0,
	}
}

func coupledForm(p Params, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * float64(p.Cutoff) / sampleRate
	r := math.Exp(-w0 / (2 * float64(p.Q)))
	a := r * math.Cos(w0)
	b := r * math.Sin(w0)
	gain := (1 - 2*a + r*r) / (b + grEpsilon)

	return Coefficients{
		B1: gain * b,
		A1: -2 * a,
		A2: r * r,
	}
}
