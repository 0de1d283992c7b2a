package imgal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imgal/imgal-go/pkg/imgal"
)

func TestSimpsonConstantCurve(t *testing.T) {
	requireLibrary(t)

	// Two even subintervals of a constant function.
	got, err := imgal.Simpson([]float64{1, 1, 1}, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 2.0, got, 1e-12)
}

func TestCompositeSimpsonOddSubintervals(t *testing.T) {
	requireLibrary(t)

	// Three subintervals: Simpson over the first two plus a trapezoid.
	got, err := imgal.CompositeSimpson([]float64{1, 1, 1, 1}, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 3.0, got, 1e-12)
}

func TestMidpoint(t *testing.T) {
	requireLibrary(t)

	got, err := imgal.Midpoint([]float64{1, 2, 3}, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 3.0, got, 1e-12)
}
