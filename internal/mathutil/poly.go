// Package mathutil provides small polynomial helpers shared by the spline
// variants.
package mathutil

// Powers4 returns the ascending power basis [1, x, x², x³] used to evaluate
// cached four-coefficient segments.
func Powers4(x float64) [4]float64 {
	x2 := x * x
	return [4]float64{1, x, x2, x2 * x}
}

// Horner evaluates a polynomial given in ascending coefficient order.
func Horner(c []float64, x float64) float64 {
	var v float64
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// HermiteBasis returns the four cubic Hermite basis values at t: the weights
// of the start value, start tangent, end value and end tangent.
func HermiteBasis(t float64) (h00, h10, h01, h11 float64) {
	t2 := t * t
	t3 := t2 * t
	h00 = 2*t3 - 3*t2 + 1
	h10 = t3 - 2*t2 + t
	h01 = -2*t3 + 3*t2
	h11 = t3 - t2
	return h00, h10, h01, h11
}
