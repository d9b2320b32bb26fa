package biquad

import (
	"fmt"
	"strings"
)

// Params are the per-call filter parameters.
//
// Cutoff must lie in (0, sampleRate/2) and Q must be > 0. Topologies do not
// check this; out-of-range values are undefined behaviour for that call and
// may leave non-finite values in the state until the next Reset.
type Params struct {
	Cutoff float32 // Hz
	Q      float32
}

// Topology is a stateful second-order low-pass realization.
//
// Process filters len(in) samples of in into out using coefficients derived
// from p at the start of the call, advancing the internal state. out must be
// at least len(in) long and must not alias in. Process does not allocate.
type Topology interface {
	Reset()
	Process(p Params, in, out []float32)
}

// Kind identifies one of the closed set of realizations.
type Kind int

const (
	KindDF2 Kind = iota
	KindGR
	KindSVF
	KindTDF2RC
)

var kindNames = [...]string{
	KindDF2:    "DF2",
	KindGR:     "GR",
	KindSVF:    "SVF",
	KindTDF2RC: "TDF2RC",
}

// String returns the display name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every realization in declared order.
func Kinds() []Kind {
	return []Kind{KindDF2, KindGR, KindSVF, KindTDF2RC}
}

// ParseKind resolves a display name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New returns a zero-state topology of kind k running at sampleRate.
func New(k Kind, sampleRate float64) (Topology, error) {
	fs := float32(sampleRate)
	switch k {
	case KindDF2:
		return NewDF2(fs), nil
	case KindGR:
		return NewGR(fs), nil
	case KindSVF:
		return NewSVF(fs), nil
	case KindTDF2RC:
		return NewTDF2RC(fs), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}

// Stateful is implemented by every topology in this package. The two
// registers mean different things per realization (delay taps, phasor
// components, integrator contents or partial sums).
type Stateful interface {
	State() [2]float32
	SetState(state [2]float32)
}
