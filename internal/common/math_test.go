package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"positive number", 5, 5},
		{"negative number", -5, 5},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abs(tt.input))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi int
		expected  int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"at bounds", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.x, tt.lo, tt.hi))
		})
	}

	assert.Equal(t, 100.0, ClampFloat(100.5, 0, 100))
	assert.Equal(t, 0.0, ClampFloat(-0.1, 0, 100))
	assert.Equal(t, 42.5, ClampFloat(42.5, 0, 100))
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b     int
		expected int
	}{
		{45, 30, 1},
		{0, 30, 0},
		{-1, 30, -1},
		{-30, 30, -1},
		{-31, 30, -2},
		{7, -2, -4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FloorDiv(tt.a, tt.b), "%d / %d", tt.a, tt.b)
	}
}
