package imgal

import "github.com/imgal/imgal-go/internal/native"

// Simpson integrates the sampled curve y with Simpson's 1/3 rule. The
// native kernel requires an even number of subintervals; deltaX is the
// spacing between samples.
func Simpson(y []float64, deltaX float64) (float64, error) {
	res, err := native.Call(native.OpSimpson,
		native.Array(y), native.Scalar(deltaX))
	return res, OpError("Simpson", err)
}

// CompositeSimpson integrates y with Simpson's 1/3 rule, falling back to a
// trapezoid for the final subinterval when their count is odd.
func CompositeSimpson(y []float64, deltaX float64) (float64, error) {
	res, err := native.Call(native.OpCompositeSimpson,
		native.Array(y), native.Scalar(deltaX))
	return res, OpError("CompositeSimpson", err)
}

// Midpoint integrates y with the midpoint rule using step width h.
func Midpoint(y []float64, h float64) (float64, error) {
	res, err := native.Call(native.OpMidpoint,
		native.Array(y), native.Scalar(h))
	return res, OpError("Midpoint", err)
}
