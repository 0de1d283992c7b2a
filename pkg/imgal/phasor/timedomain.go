package phasor

import (
	"github.com/imgal/imgal-go/internal/native"
	"github.com/imgal/imgal-go/pkg/imgal"
)

// Real computes the real (G) phasor component of the decay curve y:
// G = ∫(I(t)·cos(nωt)·dt) / ∫(I(t)·dt), where n is the harmonic and ω the
// angular frequency.
func Real(y []float64, period, harmonic, omega float64) (float64, error) {
	res, err := native.Call(native.OpTimeDomainReal,
		native.Array(y), native.Scalar(period),
		native.Scalar(harmonic), native.Scalar(omega))
	return res, imgal.OpError("phasor.Real", err)
}

// Imaginary computes the imaginary (S) phasor component of the decay curve
// y: S = ∫(I(t)·sin(nωt)·dt) / ∫(I(t)·dt).
func Imaginary(y []float64, period, harmonic, omega float64) (float64, error) {
	res, err := native.Call(native.OpTimeDomainImaginary,
		native.Array(y), native.Scalar(period),
		native.Scalar(harmonic), native.Scalar(omega))
	return res, imgal.OpError("phasor.Imaginary", err)
}
