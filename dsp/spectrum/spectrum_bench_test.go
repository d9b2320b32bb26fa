package spectrum

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-transient/internal/testutil"
)

func BenchmarkToneFit(b *testing.B) {
	x := testutil.DeterministicSine(100, 48000, 1, 4800)
	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = ToneFit(x, 100, 48000, 0)
	}
}

func BenchmarkRealFFTMagnitude(b *testing.B) {
	for _, n := range []int{1024, 4096, 16384} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			f, err := NewRealFFT(n)
			if err != nil {
				b.Fatal(err)
			}
			x := make([]float64, n)
			mag := make([]float64, n/2)
			b.ReportAllocs()
			for b.Loop() {
				_ = f.Magnitude(mag, x)
			}
		})
	}
}
