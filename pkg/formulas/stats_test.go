package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -2000.0, Round2(-2000.004))
	assert.Equal(t, 0.0, Round2(0))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-9)
}

func TestWinRate(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"all positive", []float64{1, 2, 3}, 100},
		{"half positive", []float64{0, 500}, 50},
		{"zero is not a win", []float64{0, 0, 0}, 0},
		{"one of three", []float64{-10, 0, 10}, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WinRate(tt.series))
		})
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"monotonic rise has no drawdown", []float64{0, 100, 200}, 0},
		{"single decline", []float64{100, 40}, -60},
		{"decline then recovery", []float64{100, 40, 150, 120}, -60},
		{"new peak resets drawdown to zero that day", []float64{-50, 10}, 0},
		{"all negative still measures from first peak", []float64{-10, -30, -20}, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxDrawdown(tt.series)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, 0.0)
		})
	}
}
