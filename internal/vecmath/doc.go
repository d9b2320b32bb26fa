// Package vecmath provides the single-precision block primitives the
// transient harness needs on its sample buffers: elementwise subtract,
// dot product, energy and peak.
//
// Dot product and energy dispatch to github.com/tphakala/simd/f32,
// which selects AVX/NEON kernels at runtime with a scalar fallback.
package vecmath
