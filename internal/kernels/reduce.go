package kernels

import "math"

// MaxReducible is the largest |x| RemPio2 reduces accurately. Beyond it the
// three-term split of π/2 loses bits and the quadrant count overflows the
// exact range of pio2_1; Sin and Cos switch to math.Sin and math.Cos there.
const MaxReducible = 1 << 20

// RemPio2 reduces x to r = x - k*π/2 with k = round-half-even(x*2/π) and
// returns k mod 4 together with r, |r| <= π/4.
//
// NaN and infinite inputs give a NaN remainder; the quadrant is then
// meaningless.
func RemPio2(x float64) (quadrant int, r float64) {
	k := math.RoundToEven(x * twoOverPi)
	r = x - k*pio2_1
	r -= k * pio2_2
	r -= k * pio2_3
	if math.IsNaN(r) {
		return 0, r
	}
	return int(int64(k)) & 3, r
}
