package spectrum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for a bin range that is empty or does not fit
// the spectrum it is applied to.
var ErrInvalidRange = errors.New("spectrum: invalid bin range")

// BinRange is an inclusive range of spectrum bins.
type BinRange struct {
	Lo, Hi int
}

// String formats r as "lo:hi".
func (r BinRange) String() string {
	return fmt.Sprintf("%d:%d", r.Lo, r.Hi)
}

// Len returns the number of bins in r.
func (r BinRange) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// Validate checks that r is non-empty and lies within [0, bins).
func (r BinRange) Validate(bins int) error {
	if r.Lo < 0 || r.Hi < r.Lo || r.Hi >= bins {
		return fmt.Errorf("%w: %v outside [0, %d)", ErrInvalidRange, r, bins)
	}
	return nil
}

// Zero clears mag[r.Lo..r.Hi]. Bins outside mag are ignored.
func (r BinRange) Zero(mag []float64) {
	lo := max(r.Lo, 0)
	hi := min(r.Hi, len(mag)-1)
	if lo > hi {
		return
	}
	clear(mag[lo : hi+1])
}

// ParseBinRange parses "lo:hi".
func ParseBinRange(s string) (BinRange, error) {
	loStr, hiStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return BinRange{}, fmt.Errorf("%w: %q, want lo:hi", ErrInvalidRange, s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil {
		return BinRange{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, s, err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(hiStr))
	if err != nil {
		return BinRange{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, s, err)
	}
	if lo < 0 || hi < lo {
		return BinRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return BinRange{Lo: lo, Hi: hi}, nil
}

// ERB returns the equivalent rectangular bandwidth in Hz of the auditory
// filter centred at freqHz (Glasberg & Moore).
func ERB(freqHz float64) float64 {
	return 24.7 * (4.37*freqHz/1000 + 1)
}

// ERBBinRange returns the bins of an n-point spectrum at sampleRate that
// fall within erbs ERBs either side of freqHz. Edges are rounded to the
// nearest bin and clamped to [0, n/2).
func ERBBinRange(freqHz, erbs, sampleRate float64, n int) BinRange {
	binHz := sampleRate / float64(n)
	width := erbs * ERB(freqHz)

	lo := int(math.Round((freqHz - width) / binHz))
	hi := int(math.Round((freqHz + width) / binHz))

	return BinRange{
		Lo: max(lo, 0),
		Hi: min(hi, n/2-1),
	}
}
