package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/internal/testutil"
)

func TestNewRealFFTRejectsBadSizes(t *testing.T) {
	for _, n := range []int{0, 1, 3, 1000, -8} {
		if _, err := NewRealFFT(n); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewRealFFT(%d) err = %v, want ErrInvalidSize", n, err)
		}
	}
}

func TestRealFFTMatchesGonum(t *testing.T) {
	const n = 4096
	x := core.Widen(nil, testutil.DeterministicNoise(9, 1, n))

	f, err := NewRealFFT(n)
	if err != nil {
		t.Fatalf("NewRealFFT: %v", err)
	}
	if f.Bins() != n/2 {
		t.Fatalf("Bins = %d, want %d", f.Bins(), n/2)
	}

	got, err := f.Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(got) != n/2 {
		t.Fatalf("len = %d, want %d", len(got), n/2)
	}

	want := fourier.NewFFT(n).Coefficients(nil, x)
	for k := range got {
		if d := cmplx.Abs(got[k] - want[k]); d > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, got[k], want[k])
		}
	}

	mag := make([]float64, n/2)
	if err := f.Magnitude(mag, x); err != nil {
		t.Fatalf("Magnitude: %v", err)
	}
	for k := range mag {
		if d := math.Abs(mag[k] - cmplx.Abs(want[k])); d > 1e-9 {
			t.Fatalf("mag bin %d: got %v, want %v", k, mag[k], cmplx.Abs(want[k]))
		}
	}
}

func TestRealFFTOnBinTone(t *testing.T) {
	const n = 256
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * 10 * float64(i) / n)
	}

	f, err := NewRealFFT(n)
	if err != nil {
		t.Fatal(err)
	}
	mag := make([]float64, n/2)
	if err := f.Magnitude(mag, x); err != nil {
		t.Fatal(err)
	}
	for k, m := range mag {
		want := 0.0
		if k == 10 {
			want = n / 2
		}
		if math.Abs(m-want) > 1e-9 {
			t.Fatalf("bin %d = %v, want %v", k, m, want)
		}
	}
}

func TestRealFFTLengthErrors(t *testing.T) {
	f, err := NewRealFFT(8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Forward(make([]float64, 7)); err == nil {
		t.Fatal("expected error for short input")
	}
	if err := f.Magnitude(make([]float64, 3), make([]float64, 8)); err == nil {
		t.Fatal("expected error for short output")
	}
}

func TestERBBinRangeDefault(t *testing.T) {
	r := ERBBinRange(100, 1, 48000, 4096)
	if r != (BinRange{Lo: 6, Hi: 12}) {
		t.Fatalf("ERBBinRange = %v, want 6:12", r)
	}
	if r.Len() != 7 {
		t.Fatalf("Len = %d, want 7", r.Len())
	}
}

func TestERBBinRangeScalesWithResolution(t *testing.T) {
	coarse := ERBBinRange(100, 1, 48000, 4096)
	fine := ERBBinRange(100, 1, 48000, 8192)
	if fine.Len() <= coarse.Len() {
		t.Fatalf("finer FFT should mask more bins: %v vs %v", fine, coarse)
	}
	clamped := ERBBinRange(10, 4, 48000, 64)
	if clamped.Lo != 0 {
		t.Fatalf("Lo = %d, want clamp to 0", clamped.Lo)
	}
}

func TestBinRangeZeroAndValidate(t *testing.T) {
	mag := []float64{1, 1, 1, 1, 1}
	BinRange{Lo: 1, Hi: 3}.Zero(mag)
	if mag[0] != 1 || mag[1] != 0 || mag[3] != 0 || mag[4] != 1 {
		t.Fatalf("mag = %v", mag)
	}
	BinRange{Lo: 3, Hi: 99}.Zero(mag)
	if mag[4] != 0 {
		t.Fatalf("out-of-range Hi not clamped: %v", mag)
	}

	if err := (BinRange{Lo: 6, Hi: 12}).Validate(2048); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, r := range []BinRange{{-1, 2}, {5, 4}, {0, 2048}} {
		if err := r.Validate(2048); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("Validate(%v) err = %v", r, err)
		}
	}
}

func TestParseBinRange(t *testing.T) {
	r, err := ParseBinRange(" 6:12 ")
	if err != nil || r != (BinRange{6, 12}) {
		t.Fatalf("ParseBinRange = %v, %v", r, err)
	}
	for _, s := range []string{"6", "a:3", "3:b", "9:2", "-1:3"} {
		if _, err := ParseBinRange(s); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("ParseBinRange(%q) err = %v", s, err)
		}
	}
	if got := (BinRange{6, 12}).String(); got != "6:12" {
		t.Fatalf("String() = %q", got)
	}
}
