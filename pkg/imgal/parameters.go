package imgal

import "github.com/imgal/imgal-go/internal/native"

// Omega computes the angular frequency ω = 2π/T for the given period.
func Omega(period float64) (float64, error) {
	res, err := native.Call(native.OpOmega, native.Scalar(period))
	return res, OpError("Omega", err)
}

// AbbeDiffractionLimit computes Abbe's diffraction limit,
// d = wavelength / (2 * NA), for a wavelength in nanometers and the
// objective's numerical aperture.
func AbbeDiffractionLimit(wavelength, na float64) (float64, error) {
	res, err := native.Call(native.OpAbbeDiffractionLimit,
		native.Scalar(wavelength), native.Scalar(na))
	return res, OpError("AbbeDiffractionLimit", err)
}
