package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Goertzel implements the Goertzel algorithm for single-bin frequency analysis.
//
// The analyzer is stateful and accumulates information from each processed
// block. Power, Magnitude and DFT evaluate the frequency component based on
// all samples processed since construction.
//
// Spectral leakage occurs if the target frequency does not align with an
// integer number of cycles within the processed block.
type Goertzel struct {
	omega  float64
	coeff  float64
	s0, s1 float64
	count  int
}

// NewGoertzel creates a new Goertzel analyzer for the target frequency.
//
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	omega := 2 * math.Pi * frequency / sampleRate
	return &Goertzel{omega: omega, coeff: 2 * math.Cos(omega)}, nil
}

// ProcessBlock32 updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock32(input []float32) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := float64(x) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.count += len(input)
}

// Power returns the squared magnitude of the frequency component.
//
// The result is equivalent to |X[k]|^2 from a DFT of the same block length.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// DFT returns sum(x[n] * exp(-j*w*n)) over the processed samples, with
// n = 0 at the first processed sample.
func (g *Goertzel) DFT() complex128 {
	if g.count == 0 {
		return 0
	}
	y := complex(g.s0, 0) - cmplx.Exp(complex(0, -g.omega))*complex(g.s1, 0)
	return y * cmplx.Exp(complex(0, -g.omega*float64(g.count-1)))
}

// Count returns the number of samples processed.
func (g *Goertzel) Count() int { return g.count }

// ToneFit estimates the amplitude and phase of a sinusoid at frequency in
// x. offset is the index of x[0] on a time axis where the reference
// sin(w*n) has phase 0; the returned phase is relative to that reference,
// wrapped to (-pi, pi]. x should span an integer number of periods.
func ToneFit(x []float32, frequency, sampleRate float64, offset int) (amplitude, phase float64, err error) {
	if len(x) == 0 {
		return 0, 0, fmt.Errorf("goertzel: tone fit needs samples")
	}
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, 0, err
	}
	g.ProcessBlock32(x)

	amplitude = 2 * g.Magnitude() / float64(g.Count())
	// x ~ A sin(w(n+offset) + phi) gives X ~ (A N / 2j) exp(j(phi + w*offset)).
	phase = cmplx.Phase(g.DFT()) + math.Pi/2 - g.omega*float64(offset)
	phase = math.Remainder(phase, 2*math.Pi)

	return amplitude, phase, nil
}
