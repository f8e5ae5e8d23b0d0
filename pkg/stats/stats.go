// Package stats holds the numeric primitives used by the analytics aggregations.
// Every function is total: degenerate input yields a neutral zero result
// instead of an error or NaN.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Summary is a five number (boxplot) summary of a distribution.
type Summary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// PearsonCorrelation returns the sample Pearson correlation coefficient between x and y.
// Returns 0 on empty input, mismatched lengths or zero variance in either series,
// reporting undefined correlation as "no correlation".
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return r
}

// FiveNumberSummary computes the boxplot summary of the given values.
// Quartiles use nearest-rank indexing (floor(len * p) on the sorted values),
// not interpolation. The dashboard depends on these exact positions.
func FiveNumberSummary(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	at := func(p float64) float64 {
		idx := int(math.Floor(float64(n) * p))
		if idx >= n {
			idx = n - 1
		}
		return sorted[idx]
	}

	return Summary{
		Min:    sorted[0],
		Q1:     at(0.25),
		Median: at(0.5),
		Q3:     at(0.75),
		Max:    sorted[n-1],
	}
}

// Mean returns the arithmetic mean, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// ParseDuration converts a "mm:ss" duration into total seconds.
// Malformed input is a data quality problem of the upstream store, so it
// resolves to 0 instead of an error.
func ParseDuration(raw string) int {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minutes < 0 {
		return 0
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || seconds < 0 || seconds > 59 {
		return 0
	}

	return minutes*60 + seconds
}

// FormatDuration renders total seconds as a zero padded "mm:ss" string.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// Round1 rounds to 1 decimal place. Used by the rate outputs of the analytics.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Round2 rounds to 2 decimal places. Used by the correlation outputs.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
