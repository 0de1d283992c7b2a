package imgal

import "github.com/imgal/imgal-go/internal/native"

// Sum computes the sum of data through the native summation kernel.
func Sum(data []float64) (float64, error) {
	res, err := native.Call(native.OpSum, native.Array(data))
	return res, OpError("Sum", err)
}
