package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearsonCorrelation(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		y        []float64
		expected float64
	}{
		{
			name:     "emptyinput",
			x:        []float64{},
			y:        []float64{},
			expected: 0,
		},
		{
			name:     "mismatchedlengths",
			x:        []float64{1, 2, 3},
			y:        []float64{1, 2},
			expected: 0,
		},
		{
			name:     "zerovariance",
			x:        []float64{1, 1, 1},
			y:        []float64{5, 2, 9},
			expected: 0,
		},
		{
			name:     "perfectpositive",
			x:        []float64{1, 2, 3},
			y:        []float64{2, 4, 6},
			expected: 1,
		},
		{
			name:     "perfectnegative",
			x:        []float64{1, 2, 3},
			y:        []float64{6, 4, 2},
			expected: -1,
		},
		{
			name:     "singlepoint",
			x:        []float64{4},
			y:        []float64{2},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PearsonCorrelation(tt.x, tt.y), 1e-9)
		})
	}
}

func TestFiveNumberSummary(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Summary
	}{
		{
			name:     "emptyinput",
			values:   []float64{},
			expected: Summary{},
		},
		{
			name:   "singlevalue",
			values: []float64{7},
			expected: Summary{
				Min: 7, Q1: 7, Median: 7, Q3: 7, Max: 7,
			},
		},
		{
			// Nearest rank indexing: q1 = sorted[floor(8*0.25)] = sorted[2],
			// median = sorted[4], q3 = sorted[6]. Not interpolated.
			name:   "eightvalues",
			values: []float64{8, 7, 6, 5, 4, 3, 2, 1},
			expected: Summary{
				Min: 1, Q1: 3, Median: 5, Q3: 7, Max: 8,
			},
		},
		{
			name:   "fourvalues",
			values: []float64{10, 20, 30, 40},
			expected: Summary{
				Min: 10, Q1: 20, Median: 30, Q3: 40, Max: 40,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FiveNumberSummary(tt.values))
		})
	}
}

func TestFiveNumberSummaryDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	FiveNumberSummary(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "wellformed", raw: "32:45", expected: 1965},
		{name: "zeropadded", raw: "05:07", expected: 307},
		{name: "zero", raw: "00:00", expected: 0},
		{name: "missingcolon", raw: "3245", expected: 0},
		{name: "empty", raw: "", expected: 0},
		{name: "garbage", raw: "ab:cd", expected: 0},
		{name: "negativeminutes", raw: "-3:10", expected: 0},
		{name: "secondsoutofrange", raw: "10:75", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDuration(tt.raw))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "00:00", FormatDuration(-10))
	assert.Equal(t, "32:45", FormatDuration(1965))
	assert.Equal(t, "05:07", FormatDuration(307))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 66.7, Round1(66.666))
	assert.Equal(t, 0.67, Round2(0.666))
	assert.Equal(t, -0.67, Round2(-0.666))
	assert.Equal(t, 0.0, Round1(0.04))
}
