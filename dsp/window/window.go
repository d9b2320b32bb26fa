package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name string
	// ENBW is the equivalent noise bandwidth in bins for the periodic form.
	ENBW float64
	// CoherentGain is the mean coefficient of the periodic form.
	CoherentGain float64
}

var (
	rectangularCoeffs = []float64{1}
	hannCoeffs        = []float64{0.5, -0.5}
	hammingCoeffs     = []float64{0.54, -0.46}
	blackmanCoeffs    = []float64{0.42, -0.5, 0.08}
	blackmanHarris4   = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs     = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, CoherentGain: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, CoherentGain: 0.5},
	TypeHamming:             {Name: "Hamming", ENBW: 1.3628, CoherentGain: 0.54},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.7268, CoherentGain: 0.42},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", ENBW: 2.0044, CoherentGain: 0.35875},
	TypeFlatTop:             {Name: "Flat-top", ENBW: 3.7702, CoherentGain: 0.21557895},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// String returns the window's display name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a window by name, ignoring case. "bh4" and
// "flattop" are accepted as short forms.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "none":
		return TypeRectangular, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "blackman-harris", "bh4":
		return TypeBlackmanHarris4Term, nil
	case "flat-top", "flattop":
		return TypeFlatTop, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Generate returns window coefficients of the given length. The symmetric
// form (default) uses N-1 as the position denominator, so w[0] and w[N-1]
// are the window edges.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := coefficientsOf(t)
	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = cosineFromCoeffs(x, coeffs)
	}

	return out
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Known reports whether t is a defined window type.
func Known(t Type) bool {
	_, ok := metadataByType[t]
	return ok
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func coefficientsOf(t Type) []float64 {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeBlackmanHarris4Term:
		return blackmanHarris4
	case TypeFlatTop:
		return flatTopCoeffs
	default:
		return rectangularCoeffs
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
