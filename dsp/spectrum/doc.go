// Package spectrum provides the spectrum-domain primitives used by the
// transient evaluation: a fixed-size real FFT with magnitude output, bin
// masking around a probe tone, ERB-derived mask ranges and single-tone
// estimation via the Goertzel recurrence.
//
// The FFT itself is provided by github.com/MeKo-Christian/algo-fft; this
// package plans it once and reuses its buffers.
package spectrum
