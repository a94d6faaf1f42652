package utils

import (
	"math"
	"testing"
)

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"EaseOutQuad 起点", EaseOutQuad, 0, 0},
		{"EaseOutQuad 中点", EaseOutQuad, 0.5, 0.75},
		{"EaseOutQuad 终点", EaseOutQuad, 1, 1},
		{"EaseOutQuad 超出范围", EaseOutQuad, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEaseOutQuadMonotonic(t *testing.T) {
	prev := EaseOutQuad(0)
	for i := 1; i <= 100; i++ {
		v := EaseOutQuad(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOutQuad decreased at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}
