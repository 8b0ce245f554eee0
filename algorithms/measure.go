// SPDX-License-Identifier: MIT

// Package algorithms - measurements over iterable intervals.

package algorithms

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvlimg/core"
)

const (
	ctxStatistics = "Statistics"
	ctxPercentile = "Percentile"
)

// CenterOfMass returns Σ x·v / Σ v per axis over every sample of ii. A zero
// total intensity yields NaN on every axis; it is not an error.
// Complexity: O(size·N).
func CenterOfMass[T core.Real](ii core.IterableInterval[T]) []float64 {
	n := ii.NumDimensions()
	sum := make([]float64, n)
	total := 0.0

	c := ii.LocalizingCursor()
	for c.HasNext() {
		v := core.ToReal(c.Next())
		total += v
		for d := 0; d < n; d++ {
			sum[d] += float64(c.Position(d)) * v
		}
	}
	for d := range sum {
		sum[d] /= total
	}

	return sum
}

// Summary describes the sample distribution of an image.
type Summary struct {
	Count  int
	Sum    float64
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.4g max=%.4g mean=%.4g median=%.4g sd=%.4g",
		s.Count, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
}

// samples copies every value of ii into a stats.Float64Data.
func samples[T core.Real](ii core.IterableInterval[T]) stats.Float64Data {
	data := make(stats.Float64Data, 0, ii.Size())
	c := ii.Cursor()
	for c.HasNext() {
		data = append(data, core.ToReal(c.Next()))
	}

	return data
}

// Statistics summarises every sample of ii (population standard deviation).
// Errors: ErrEmptyInput.
// Complexity: O(size·log size) (the median sorts a copy).
func Statistics[T core.Real](ii core.IterableInterval[T]) (Summary, error) {
	data := samples(ii)
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("%s: %w", ctxStatistics, ErrEmptyInput)
	}

	s := Summary{Count: len(data)}
	var err error
	steps := []struct {
		dst *float64
		fn  func() (float64, error)
	}{
		{&s.Sum, data.Sum},
		{&s.Min, data.Min},
		{&s.Max, data.Max},
		{&s.Mean, data.Mean},
		{&s.Median, data.Median},
		{&s.StdDev, data.StandardDeviationPopulation},
	}
	for _, st := range steps {
		if *st.dst, err = st.fn(); err != nil {
			return Summary{}, algErrorf(ctxStatistics, err)
		}
	}

	return s, nil
}

// Percentile returns the p-th percentile (0 < p <= 100) of the samples of ii.
// Errors: ErrEmptyInput, and the stats package's bounds error for p.
func Percentile[T core.Real](ii core.IterableInterval[T], p float64) (float64, error) {
	data := samples(ii)
	if len(data) == 0 {
		return 0, fmt.Errorf("%s: %w", ctxPercentile, ErrEmptyInput)
	}
	v, err := data.Percentile(p)
	if err != nil {
		return 0, fmt.Errorf("%s(%v): %w", ctxPercentile, p, err)
	}

	return v, nil
}
