// Package formulas provides the shared numerical routines used by the
// backtest engine and its reporting.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Round2 rounds a currency or price value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// WinRate returns the percentage of values in the series that are
// strictly positive, rounded to 2 decimals. Empty series yields 0.
func WinRate(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	positive := 0
	for _, v := range series {
		if v > 0 {
			positive++
		}
	}

	return Round2(float64(positive) / float64(len(series)) * 100)
}

// MaxDrawdown returns the largest decline from a running peak over the
// series, expressed as a non-positive number rounded to 2 decimals.
// The peak is updated before the drawdown is measured, so a value that
// sets a new peak contributes zero drawdown. Empty series yields 0.
func MaxDrawdown(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	peak := math.Inf(-1)
	maxDrawdown := 0.0

	for _, v := range series {
		if v > peak {
			peak = v
		}
		if dd := peak - v; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	if maxDrawdown == 0 {
		return 0
	}
	return Round2(-maxDrawdown)
}
