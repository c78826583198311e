// Package summary computes summary statistics of metric samples, such as the
// per-image values of one metric under one filter configuration.
//
// NaN samples mark missing measurements and are skipped; they are counted in
// [Stats.Missing].
package summary

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/montanaflynn/stats"
)

// Stats holds summary statistics of a sample set.
type Stats struct {
	Count    int     `json:"count"`
	Missing  int     `json:"missing"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"` // population variance
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	MinPos   int     `json:"min_pos"`
	Max      float64 `json:"max"`
	MaxPos   int     `json:"max_pos"`
	RMS      float64 `json:"rms"`
	Median   float64 `json:"median"`
}

// Calculate computes mean, variance and extrema in a single pass using
// Welford's online algorithm. RMS and median are computed over the
// non-missing samples separately.
func Calculate(samples []float64) Stats {
	values, positions := finite(samples)

	s := Stats{Missing: len(samples) - len(values)}
	if len(values) == 0 {
		return s
	}

	var mean, m2 float64

	minVal, minPos := values[0], positions[0]
	maxVal, maxPos := values[0], positions[0]

	for i, x := range values {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal, maxPos = x, positions[i]
		}

		if x < minVal {
			minVal, minPos = x, positions[i]
		}
	}

	nf := float64(len(values))
	variance := m2 / nf

	s.Count = len(values)
	s.Mean = mean
	s.Variance = variance
	s.Std = math.Sqrt(variance)
	s.Min, s.MinPos = minVal, minPos
	s.Max, s.MaxPos = maxVal, maxPos
	s.RMS = math.Sqrt(vecmath.DotProduct(values, values) / nf)
	s.Median, _ = stats.Median(values)

	return s
}

// finite returns the non-NaN samples and their original positions.
func finite(samples []float64) ([]float64, []int) {
	values := make([]float64, 0, len(samples))
	positions := make([]int, 0, len(samples))

	for i, x := range samples {
		if math.IsNaN(x) {
			continue
		}

		values = append(values, x)
		positions = append(positions, i)
	}

	return values, positions
}

// Accumulator accumulates statistics incrementally across multiple blocks of
// samples. Apart from Median, which it does not track, its result matches
// [Calculate] on the concatenated samples.
type Accumulator struct {
	seen    int
	n       int
	missing int
	mean    float64
	m2      float64
	sumSq   float64
	minVal  float64
	minPos  int
	maxVal  float64
	maxPos  int
	block   []float64
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Update adds samples to the running statistics.
func (a *Accumulator) Update(samples ...float64) {
	a.block = a.block[:0]

	for _, x := range samples {
		pos := a.seen
		a.seen++

		if math.IsNaN(x) {
			a.missing++
			continue
		}

		a.n++
		ni := float64(a.n)

		delta := x - a.mean
		a.mean += delta / ni
		a.m2 += delta * (x - a.mean)
		a.block = append(a.block, x)

		if a.n == 1 {
			a.minVal, a.minPos = x, pos
			a.maxVal, a.maxPos = x, pos

			continue
		}

		if x > a.maxVal {
			a.maxVal, a.maxPos = x, pos
		}

		if x < a.minVal {
			a.minVal, a.minPos = x, pos
		}
	}

	a.sumSq += vecmath.DotProduct(a.block, a.block)
}

// Count returns the number of non-missing samples seen so far.
func (a *Accumulator) Count() int { return a.n }

// Result computes the statistics of the accumulated samples. Median is left
// at zero.
func (a *Accumulator) Result() Stats {
	s := Stats{Missing: a.missing}
	if a.n == 0 {
		return s
	}

	nf := float64(a.n)
	variance := a.m2 / nf

	s.Count = a.n
	s.Mean = a.mean
	s.Variance = variance
	s.Std = math.Sqrt(variance)
	s.Min, s.MinPos = a.minVal, a.minPos
	s.Max, s.MaxPos = a.maxVal, a.maxPos
	s.RMS = math.Sqrt(a.sumSq / nf)

	return s
}

// Reset clears all accumulated data, allowing the Accumulator to be reused.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
