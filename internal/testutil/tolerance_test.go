package testutil

import (
	"math"
	"testing"
)

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, 1.0, 1.0+1e-12, 1e-10, "close")
	RequireNearlyEqual(t, math.NaN(), math.NaN(), 1e-10, "nan")
	RequireNearlyEqual(t, math.Inf(1), math.Inf(1), 1e-10, "inf")
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, math.NaN()}, []float64{1, 2 + 1e-12, math.NaN()}, 1e-10)
	RequireSliceNearlyEqual(t, nil, []float64{}, 0)
}
