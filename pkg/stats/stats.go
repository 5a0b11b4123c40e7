// Package stats computes descriptive statistics over a sample of finite
// floating-point values using basic algorithms only.
//
// All functions assume a non-empty sample; callers must guard the empty case
// before calling into this package.
package stats

import (
	"math"
	"sort"
)

// Result holds the descriptive statistics for one sample.
type Result struct {
	Count    int
	Mean     float64
	Median   float64
	Modes    []float64 // empty when every value is unique
	ModeFreq int
	Variance float64 // population variance, divisor N
	StdDev   float64
}

// Mean computes the arithmetic mean, accumulating in encounter order.
func Mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// Median sorts a copy of the sample and returns the middle element, or the
// average of the two middle elements for even-sized samples.
func Median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}

// Modes returns every value tied for the highest frequency, sorted ascending,
// together with that frequency. When the highest frequency is 1 (all values
// unique) the mode set is empty and the frequency reported is 1.
func Modes(values []float64) ([]float64, int) {
	freq := make(map[float64]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	maxCount := 0
	for _, c := range freq {
		if c > maxCount {
			maxCount = c
		}
	}

	if maxCount <= 1 {
		return nil, 1
	}

	var modes []float64
	for v, c := range freq {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	return modes, maxCount
}

// Variance computes the population variance (divisor N) given the mean.
func Variance(values []float64, mean float64) float64 {
	total := 0.0
	for _, v := range values {
		diff := v - mean
		total += diff * diff
	}
	return total / float64(len(values))
}

// StdDev computes the standard deviation from a variance.
func StdDev(variance float64) float64 {
	return math.Sqrt(variance)
}

// Describe computes the full set of descriptive statistics for a non-empty
// sample.
func Describe(values []float64) Result {
	mean := Mean(values)
	variance := Variance(values, mean)
	modes, modeFreq := Modes(values)

	return Result{
		Count:    len(values),
		Mean:     mean,
		Median:   Median(values),
		Modes:    modes,
		ModeFreq: modeFreq,
		Variance: variance,
		StdDev:   StdDev(variance),
	}
}
