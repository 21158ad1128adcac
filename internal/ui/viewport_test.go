package ui

import (
	"testing"

	"github.com/samdwyer/cavemap/internal/world"
)

func TestViewportCenterOn(t *testing.T) {
	tests := []struct {
		name   string
		p      world.Point
		wantX  int
		wantY  int
		mapW   int
		mapH   int
		width  int
		height int
	}{
		{"middle", world.Point{X: 50, Y: 50}, 40, 45, 100, 100, 20, 10},
		{"top-left corner", world.Point{X: 1, Y: 1}, 0, 0, 100, 100, 20, 10},
		{"bottom-right corner", world.Point{X: 99, Y: 99}, 80, 90, 100, 100, 20, 10},
		{"map smaller than view", world.Point{X: 3, Y: 3}, 0, 0, 8, 6, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewport(tt.width, tt.height).CenterOn(tt.p, tt.mapW, tt.mapH)
			if vp.X != tt.wantX || vp.Y != tt.wantY {
				t.Errorf("CenterOn(%s) origin = (%d,%d), want (%d,%d)", tt.p, vp.X, vp.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewportPanAndZoom(t *testing.T) {
	vp := NewViewport(10, 10)

	vp = vp.Pan(world.Right, 5, 100, 100)
	if vp.X != 5 || vp.Y != 0 {
		t.Errorf("Pan(right) origin = (%d,%d), want (5,0)", vp.X, vp.Y)
	}

	vp = vp.Pan(world.Up, 5, 100, 100)
	if vp.Y != 0 {
		t.Errorf("Pan(up) at top edge Y = %d, want 0", vp.Y)
	}

	vp = vp.Pan(world.Right, 1000, 100, 100)
	if vp.X != 90 {
		t.Errorf("Pan(right) far X = %d, want 90", vp.X)
	}

	// Centre is (95,5); at scale 4 the view spans 40 cells, clamped to 60.
	vp = vp.Zoom(4, 100, 100)
	if vp.Scale != 4 || vp.X != 60 || vp.Y != 0 {
		t.Errorf("Zoom(4) = %+v, want scale 4 origin (60,0)", vp)
	}

	vp = vp.Pan(world.Left, 1, 100, 100)
	if vp.X != 56 {
		t.Errorf("Pan(left) zoomed X = %d, want 56", vp.X)
	}
}

func TestViewportBlock(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 5, Height: 5, Scale: 3}

	lo, hi := vp.Block(2, 1)
	if lo != (world.Point{X: 16, Y: 23}) || hi != (world.Point{X: 19, Y: 26}) {
		t.Errorf("Block(2,1) = %s..%s, want (16,23)..(19,26)", lo, hi)
	}

	vp.Scale = 0
	lo, hi = vp.Block(0, 0)
	if lo != (world.Point{X: 10, Y: 20}) || hi != (world.Point{X: 11, Y: 21}) {
		t.Errorf("Block(0,0) with scale 0 = %s..%s, want a single cell", lo, hi)
	}
}
