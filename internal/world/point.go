package world

import "fmt"

// Point is a zero-based grid coordinate. It doubles as a movement delta.
type Point struct {
	X, Y int
}

// Unit movement vectors.
var (
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
)

// Directions lists the four axis-aligned neighbours in the order walls are
// cleared around the agent.
var Directions = [4]Point{Right, Left, Down, Up}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsStep reports whether p is a unit direction or the zero vector.
func (p Point) IsStep() bool {
	if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
		return false
	}
	return p.X == 0 || p.Y == 0
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
