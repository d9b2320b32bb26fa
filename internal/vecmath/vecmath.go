package vecmath

import "github.com/tphakala/simd/f32"

// SubBlock computes dst[i] = a[i] - b[i] for i in [0, len(dst)).
// a and b must be at least len(dst) long.
func SubBlock(dst, a, b []float32) {
	if len(dst) == 0 {
		return
	}
	_ = a[len(dst)-1] // bounds check hint
	_ = b[len(dst)-1]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// DotProduct returns sum(a[i]*b[i]) over the common length of a and b.
func DotProduct(a, b []float32) float32 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return f32.DotProductUnsafe(a[:n], b[:n])
}

// Energy returns the sum of squares of x.
func Energy(x []float32) float32 {
	return DotProduct(x, x)
}

