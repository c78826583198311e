package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireNearlyEqual fails t if got and want differ by more than eps. Two
// NaNs or two equal infinities compare equal.
func RequireNearlyEqual(t *testing.T, got, want, eps float64, field string) {
	t.Helper()

	if math.IsNaN(got) && math.IsNaN(want) {
		return
	}

	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		require.Equal(t, want, got, field)
		return
	}

	require.InDeltaf(t, want, got, eps, "%s: got %v, want %v", field, got, want)
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")

	for i := range got {
		RequireNearlyEqual(t, got[i], want[i], eps, fmt.Sprintf("index %d", i))
	}
}
