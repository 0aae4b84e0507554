package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Narrow copies float64 values into dst as float32 and returns dst.
// dst is grown if it is too short.
func Narrow(dst []float32, src []float64) []float32 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
	return dst
}
