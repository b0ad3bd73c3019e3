package simd

// Broadcast fills a lane block with v.
func Broadcast[T Lanes](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Load returns the n-lane block starting at src[0] without copying.
// The capacity is clipped so appends cannot spill into neighbouring lanes.
func Load[T Lanes](src []T, n int) []T {
	return src[:n:n]
}

// Store writes a lane block to dst. Both must hold at least len(v) elements.
func Store[T Lanes](dst, v []T) {
	copy(dst[:len(v)], v)
}

// Bound returns the largest multiple of lanes that is <= n.
func Bound(n, lanes int) int {
	if lanes <= 1 {
		return n
	}
	return n / lanes * lanes
}
