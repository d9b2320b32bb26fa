package biquad

import (
	"math"
	"testing"
)

// Section is a double-precision transposed Direct Form II biquad used as the
// reference the single-precision topologies are checked against. Its
// coefficients are fixed.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlockTo filters src into dst. dst must be at least len(src) long.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		y := s.B0*x + s.d0
		s.d0 = s.B1*x - s.A1*y + s.d1
		s.d1 = s.B2*x - s.A2*y
		dst[i] = y
	}
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}

// ImpulseResponse computes n samples of the impulse response h[n].
// The filter state is saved and restored.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()
	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	s.SetState(saved)
	return ir
}

func TestSectionHandTrace(t *testing.T) {
	// y=0.25, 0.55, 0.35, 0.048 for an impulse through
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04.
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); math.Abs(y-w) > 1e-12 {
			t.Fatalf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestSectionImpulseResponsePreservesState(t *testing.T) {
	s := NewSection(LowpassRBJ(targetParams, testRate))
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	before := s.State()

	ir := s.ImpulseResponse(64)
	if len(ir) != 64 {
		t.Fatalf("len = %d, want 64", len(ir))
	}
	if s.State() != before {
		t.Fatal("ImpulseResponse modified section state")
	}
	if s.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n=0")
	}
}
