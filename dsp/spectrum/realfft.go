package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidSize is returned for FFT sizes that are not a power of two >= 2.
var ErrInvalidSize = errors.New("spectrum: FFT size must be a power of two >= 2")

// RealFFT is a forward FFT of fixed size N over real input. Only the first
// N/2 bins (DC up to, but excluding, Nyquist) are exposed.
//
// The plan and all buffers are allocated once by NewRealFFT. A RealFFT is
// not safe for concurrent use.
type RealFFT struct {
	n    int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
	re   []float64
	im   []float64
}

// NewRealFFT plans a transform of size n.
func NewRealFFT(n int) (*RealFFT, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: plan FFT size %d: %w", n, err)
	}

	return &RealFFT{
		n:    n,
		plan: plan,
		in:   make([]complex128, n),
		out:  make([]complex128, n),
		re:   make([]float64, n/2),
		im:   make([]float64, n/2),
	}, nil
}

// Bins returns N/2, the length of the half spectrum.
func (f *RealFFT) Bins() int { return f.n / 2 }

// Forward transforms src (length N) and returns the first N/2 complex bins.
// The returned slice aliases internal storage and is overwritten by the
// next call.
func (f *RealFFT) Forward(src []float64) ([]complex128, error) {
	if len(src) != f.n {
		return nil, fmt.Errorf("spectrum: FFT input length %d, want %d", len(src), f.n)
	}

	for i, v := range src {
		f.in[i] = complex(v, 0)
	}

	if err := f.plan.Forward(f.out, f.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return f.out[:f.n/2], nil
}

// Magnitude writes |X[k]| for k in [0, N/2) of src into dst, which must be
// at least N/2 long.
func (f *RealFFT) Magnitude(dst, src []float64) error {
	if len(dst) < f.n/2 {
		return fmt.Errorf("spectrum: magnitude output length %d, want >= %d", len(dst), f.n/2)
	}

	bins, err := f.Forward(src)
	if err != nil {
		return err
	}

	for i, c := range bins {
		f.re[i] = real(c)
		f.im[i] = imag(c)
	}
	vecmath.Magnitude(dst[:f.n/2], f.re, f.im)

	return nil
}
