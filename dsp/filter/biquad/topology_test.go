package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-transient/internal/testutil"
)

const testRate = 48000.0

var (
	initialParams = Params{Cutoff: 80, Q: 6}
	targetParams  = Params{Cutoff: 120, Q: 6}
)

func newTopology(t *testing.T, k Kind) Topology {
	t.Helper()
	f, err := New(k, testRate)
	if err != nil {
		t.Fatalf("New(%v): %v", k, err)
	}
	return f
}

func run(f Topology, p Params, in []float32) []float32 {
	out := make([]float32, len(in))
	f.Process(p, in, out)
	return out
}

func TestProcessDeterministic(t *testing.T) {
	in := testutil.DeterministicNoise(3, 1, 4096)
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := newTopology(t, k)
			f.Reset()
			first := run(f, targetParams, in)
			f.Reset()
			second := run(f, targetParams, in)
			testutil.RequireIdentical(t, second, first)
		})
	}
}

func TestZeroInputZeroOutput(t *testing.T) {
	in := make([]float32, 2048)
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := newTopology(t, k)
			out := run(f, initialParams, in)
			for i, v := range out {
				if v != 0 {
					t.Fatalf("out[%d] = %v, want 0", i, v)
				}
			}
			if st := f.(Stateful).State(); st != [2]float32{} {
				t.Fatalf("state = %v, want zero", st)
			}
		})
	}
}

func TestResetClearsState(t *testing.T) {
	in := testutil.DC(1, 512)
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := newTopology(t, k)
			run(f, targetParams, in)
			s := f.(Stateful)
			if s.State() == [2]float32{} {
				t.Fatal("state unexpectedly zero after DC input")
			}
			f.Reset()
			if st := s.State(); st != [2]float32{} {
				t.Fatalf("state after Reset = %v, want zero", st)
			}
		})
	}
}

func TestBlockSplitInvariance(t *testing.T) {
	in := testutil.DeterministicNoise(11, 1, 3000)
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := newTopology(t, k)
			whole := run(f, targetParams, in)

			f.Reset()
			split := make([]float32, len(in))
			f.Process(targetParams, in[:1234], split[:1234])
			f.Process(targetParams, in[1234:], split[1234:])

			testutil.RequireIdentical(t, split, whole)
		})
	}
}

func TestParameterSwitchAppliesOnNextCall(t *testing.T) {
	in := testutil.DC(1, 4000)
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := newTopology(t, k)
			run(f, initialParams, in)
			saved := f.(Stateful).State()

			switched := run(f, targetParams, in[:16])

			g := newTopology(t, k)
			g.(Stateful).SetState(saved)
			want := run(g, targetParams, in[:16])
			testutil.RequireIdentical(t, switched, want)

			g.(Stateful).SetState(saved)
			stale := run(g, initialParams, in[:16])
			if stale[0] == switched[0] && stale[15] == switched[15] {
				t.Fatal("switched output identical to unswitched output")
			}
		})
	}
}

func TestEmptyBlockIsNoOp(t *testing.T) {
	for _, k := range Kinds() {
		f := newTopology(t, k)
		f.(Stateful).SetState([2]float32{1, 2})
		f.Process(targetParams, nil, nil)
		if st := f.(Stateful).State(); st != [2]float32{1, 2} {
			t.Fatalf("%v: state changed on empty block: %v", k, st)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		s := newTopology(t, k).(Stateful)
		s.SetState([2]float32{0.25, -3})
		if got := s.State(); got != [2]float32{0.25, -3} {
			t.Fatalf("%v: State() = %v", k, got)
		}
	}
}

// Steady-state tone response must match each realization's own transfer
// function within 1% in magnitude.
func TestSteadyStateMatchesTransferFunction(t *testing.T) {
	const (
		total = 48000
		tail  = 4800 // integer number of periods for both probe tones
	)
	for _, k := range Kinds() {
		for _, freq := range []float64{50, 400} {
			f := newTopology(t, k)
			in := testutil.DeterministicSine(freq, testRate, 1, total)
			out := run(f, targetParams, in)

			gotAmp, gotPhase := testutil.ToneFit(out[total-tail:], freq, testRate, total-tail)
			h := response(k, targetParams, freq)
			wantAmp := math.Hypot(real(h), imag(h))
			wantPhase := math.Atan2(imag(h), real(h))

			if rel := math.Abs(gotAmp-wantAmp) / wantAmp; rel > 0.01 {
				t.Errorf("%v @ %.0f Hz: amplitude %.6f, want %.6f (rel err %.4f)", k, freq, gotAmp, wantAmp, rel)
			}
			if d := math.Abs(math.Remainder(gotPhase-wantPhase, 2*math.Pi)); d > 0.01 {
				t.Errorf("%v @ %.0f Hz: phase %.5f, want %.5f", k, freq, gotPhase, wantPhase)
			}
		}
	}
}

func TestDCGainUnity(t *testing.T) {
	in := testutil.DC(1, 20000)
	for _, k := range Kinds() {
		f := newTopology(t, k)
		out := run(f, targetParams, in)
		if got := out[len(out)-1]; math.Abs(float64(got)-1) > 1e-2 {
			t.Errorf("%v: DC output %v, want ~1", k, got)
		}
	}
}

func TestMatchesDoublePrecisionReference(t *testing.T) {
	p := Params{Cutoff: 1000, Q: 0.7071}
	in := testutil.DeterministicNoise(5, 1, 2000)
	wide := make([]float64, len(in))
	for i, v := range in {
		wide[i] = float64(v)
	}

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			got := run(newTopology(t, k), p, in)

			ref := NewSection(TransferFunction(k, p, testRate))
			want := make([]float64, len(wide))
			ref.ProcessBlockTo(want, wide)

			for i := range got {
				if d := math.Abs(float64(got[i]) - want[i]); d > 1e-3 {
					t.Fatalf("sample %d: got %v, want %v (diff %v)", i, got[i], want[i], d)
				}
			}
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Kind(99), testRate); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
