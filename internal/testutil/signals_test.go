package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 1, 128)
	b := DeterministicNoise(7, 1, 128)
	RequireIdentical(t, a, b)
}

func TestImpulse(t *testing.T) {
	x := Impulse(8, 3)
	for i, v := range x {
		want := float32(0)
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("x[%d] = %v, want %v", i, v, want)
		}
	}
	if Impulse(4, 9)[0] != 0 {
		t.Fatal("out-of-range position must produce zeros")
	}
}

func TestToneFitRecoversAmplitudeAndPhase(t *testing.T) {
	const (
		fs    = 48000.0
		f     = 100.0
		amp   = 0.75
		phase = 0.4
		n     = 4800 // 10 periods
		start = 960
	)
	x := make([]float32, n)
	for i := range x {
		x[i] = float32(amp * math.Sin(2*math.Pi*f*float64(start+i)/fs+phase))
	}

	gotAmp, gotPhase := ToneFit(x, f, fs, start)
	if math.Abs(gotAmp-amp) > 1e-5 {
		t.Fatalf("amplitude = %v, want %v", gotAmp, amp)
	}
	if math.Abs(gotPhase-phase) > 1e-5 {
		t.Fatalf("phase = %v, want %v", gotPhase, phase)
	}
}
