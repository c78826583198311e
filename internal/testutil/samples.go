// Package testutil holds fixtures and assertions shared by the package tests.
package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// DeterministicSamples generates n samples uniformly spread over
// [mean-spread, mean+spread] with a fixed seed for reproducibility.
func DeterministicSamples(seed int64, mean, spread float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = mean + (rng.Float64()*2-1)*spread
	}

	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// WithMissing returns a copy of samples with NaN at the given positions.
func WithMissing(samples []float64, positions ...int) []float64 {
	out := append([]float64(nil), samples...)

	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] = math.NaN()
		}
	}

	return out
}

// ResultsCSV renders an experiment result table with one row per filter and
// image. Column "filter" comes first, then "k", then the metrics. The value
// of metric j for filter i and image n is i*10 + j + n.
func ResultsCSV(filters, metrics []string, images int) string {
	var b strings.Builder

	b.WriteString(",filter,k")

	for _, m := range metrics {
		b.WriteString("," + m)
	}

	b.WriteString("\n")

	row := 0

	for i, f := range filters {
		for n := range images {
			fmt.Fprintf(&b, "%d,%s,%d", row, f, 3+2*(n%2))

			for j := range metrics {
				fmt.Fprintf(&b, ",%g", float64(i*10+j+n))
			}

			b.WriteString("\n")

			row++
		}
	}

	return b.String()
}
