package ui

import "github.com/samdwyer/cavemap/internal/world"

// Viewport is the window of map cells shown on screen. With Scale > 1 each
// screen cell summarizes a Scale x Scale block of map cells.
type Viewport struct {
	X, Y          int // Map coordinate of the top-left screen cell
	Width, Height int // Size in screen cells
	Scale         int
}

// NewViewport creates a 1:1 viewport at the map origin.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, Scale: 1}
}

// span returns how many map cells the viewport covers along each axis.
func (v Viewport) span() (int, int) {
	s := v.scale()
	return v.Width * s, v.Height * s
}

func (v Viewport) scale() int {
	if v.Scale < 1 {
		return 1
	}
	return v.Scale
}

// Clamp keeps the viewport inside a mapWidth x mapHeight map. A map smaller
// than the viewport is pinned to the origin.
func (v Viewport) Clamp(mapWidth, mapHeight int) Viewport {
	spanX, spanY := v.span()
	v.X = clamp(v.X, 0, mapWidth-spanX)
	v.Y = clamp(v.Y, 0, mapHeight-spanY)
	return v
}

// CenterOn moves the viewport so p is in the middle, then clamps it.
func (v Viewport) CenterOn(p world.Point, mapWidth, mapHeight int) Viewport {
	spanX, spanY := v.span()
	v.X = p.X - spanX/2
	v.Y = p.Y - spanY/2
	return v.Clamp(mapWidth, mapHeight)
}

// Pan shifts the viewport by d scaled by step screen cells, then clamps it.
func (v Viewport) Pan(d world.Point, step, mapWidth, mapHeight int) Viewport {
	v.X += d.X * step * v.scale()
	v.Y += d.Y * step * v.scale()
	return v.Clamp(mapWidth, mapHeight)
}

// Zoom changes the scale while keeping the same map cell at the centre.
func (v Viewport) Zoom(scale, mapWidth, mapHeight int) Viewport {
	spanX, spanY := v.span()
	center := world.Point{X: v.X + spanX/2, Y: v.Y + spanY/2}
	v.Scale = scale
	return v.CenterOn(center, mapWidth, mapHeight)
}

// Resize changes the on-screen size.
func (v Viewport) Resize(width, height, mapWidth, mapHeight int) Viewport {
	v.Width = width
	v.Height = height
	return v.Clamp(mapWidth, mapHeight)
}

// Block returns the map cells covered by screen cell (sx, sy) as a half-open
// rectangle [min, max).
func (v Viewport) Block(sx, sy int) (lo, hi world.Point) {
	s := v.scale()
	lo = world.Point{X: v.X + sx*s, Y: v.Y + sy*s}
	hi = world.Point{X: lo.X + s, Y: lo.Y + s}
	return lo, hi
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
