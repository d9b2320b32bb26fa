package core

// Sample is the set of sample types the harness moves around.
type Sample interface {
	~float32 | ~float64
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[F Sample](buf []F, n int) []F {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]F, n)
}

// Widen converts single-precision samples into dst and returns dst[:len(src)].
// dst is grown if needed.
func Widen(dst []float64, src []float32) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, x := range src {
		dst[i] = float64(x)
	}
	return dst
}

