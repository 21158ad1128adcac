package world

import (
	"math"
	"testing"
)

func TestPointIsStep(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{}, true},
		{Left, true},
		{Right, true},
		{Up, true},
		{Down, true},
		{Point{X: 1, Y: 1}, false},
		{Point{X: -1, Y: 1}, false},
		{Point{X: 2, Y: 0}, false},
		{Point{X: 0, Y: -2}, false},
		{Point{X: math.MinInt, Y: 0}, false},
		{Point{X: 0, Y: math.MinInt}, false},
		{Point{X: math.MinInt, Y: math.MinInt}, false},
		{Point{X: math.MaxInt, Y: 0}, false},
	}

	for _, tt := range tests {
		if got := tt.p.IsStep(); got != tt.want {
			t.Errorf("%s.IsStep() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointAdd(t *testing.T) {
	if got := (Point{X: 3, Y: 4}).Add(Left).Add(Down); got != (Point{X: 2, Y: 5}) {
		t.Errorf("Add() = %s, want (2,5)", got)
	}
}
