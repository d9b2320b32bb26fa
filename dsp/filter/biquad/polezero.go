package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// PoleRadius returns the largest pole magnitude of c.
func (c *Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// DecaySamples returns the number of samples for the slowest pole to decay
// by factor 1/e, or +Inf for poles on or outside the unit circle.
func (c *Coefficients) DecaySamples() float64 {
	r := c.PoleRadius()
	if r >= 1 {
		return math.Inf(1)
	}
	if r == 0 {
		return 0
	}
	return -1 / math.Log(r)
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
