package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func response(k Kind, p Params, freqHz float64) complex128 {
	c := TransferFunction(k, p, testRate)
	return c.Response(freqHz, testRate)
}

func TestTPTMatchesRBJ(t *testing.T) {
	for _, p := range []Params{{80, 6}, {120, 6}, {1000, 0.7071}, {10000, 2}} {
		rbj := LowpassRBJ(p, testRate)
		tpt := lowpassTPT(p, testRate)
		pairs := [][2]float64{
			{rbj.B0, tpt.B0}, {rbj.B1, tpt.B1}, {rbj.B2, tpt.B2},
			{rbj.A1, tpt.A1}, {rbj.A2, tpt.A2},
		}
		for i, pr := range pairs {
			if math.Abs(pr[0]-pr[1]) > 1e-12 {
				t.Fatalf("%+v coeff %d: rbj %v, tpt %v", p, i, pr[0], pr[1])
			}
		}
	}
}

func TestResponseUnityAtDC(t *testing.T) {
	for _, k := range Kinds() {
		h := response(k, targetParams, 0)
		if math.Abs(cmplx.Abs(h)-1) > 1e-9 {
			t.Errorf("%v: |H(0)| = %v, want 1", k, cmplx.Abs(h))
		}
	}
}

func TestRBJMagnitudeAtCutoffEqualsQ(t *testing.T) {
	for _, k := range []Kind{KindDF2, KindSVF, KindTDF2RC} {
		h := response(k, targetParams, float64(targetParams.Cutoff))
		if math.Abs(cmplx.Abs(h)-float64(targetParams.Q)) > 1e-6 {
			t.Errorf("%v: |H(fc)| = %v, want %v", k, cmplx.Abs(h), targetParams.Q)
		}
	}
}

func TestMagnitudeSquaredMatchesResponse(t *testing.T) {
	c := LowpassRBJ(Params{Cutoff: 2000, Q: 1.5}, testRate)
	for _, f := range []float64{10, 500, 2000, 8000, 20000} {
		h := c.Response(f, testRate)
		want := real(h)*real(h) + imag(h)*imag(h)
		got := c.MagnitudeSquared(f, testRate)
		if math.Abs(got-want) > 1e-12*math.Max(1, want) {
			t.Fatalf("f=%v: MagnitudeSquared=%v, |H|^2=%v", f, got, want)
		}
		if d := c.MagnitudeDB(f, testRate) - 10*math.Log10(want); math.Abs(d) > 1e-9 {
			t.Fatalf("f=%v: MagnitudeDB mismatch %v", f, d)
		}
		if d := c.Phase(f, testRate) - cmplx.Phase(h); math.Abs(d) > 1e-12 {
			t.Fatalf("f=%v: Phase mismatch %v", f, d)
		}
	}
}

func TestLowpassRolloff(t *testing.T) {
	for _, k := range Kinds() {
		lo := cmplx.Abs(response(k, targetParams, 20))
		hi := cmplx.Abs(response(k, targetParams, 5000))
		if hi >= lo/100 {
			t.Errorf("%v: |H(5k)| = %v not well below |H(20)| = %v", k, hi, lo)
		}
	}
}

func TestSinglePrecisionCoefficientsTrackDouble(t *testing.T) {
	c32 := lowpassRBJ32(targetParams, testRate).Coefficients()
	c64 := LowpassRBJ(targetParams, testRate)
	if math.Abs(c32.A1-c64.A1) > 1e-6 || math.Abs(c32.A2-c64.A2) > 1e-6 {
		t.Fatalf("feedback drift: %+v vs %+v", c32, c64)
	}
	if math.Abs(c32.B0-c64.B0)/c64.B0 > 1e-3 {
		t.Fatalf("B0 drift: %v vs %v", c32.B0, c64.B0)
	}
}
