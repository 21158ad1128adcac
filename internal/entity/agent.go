// Package entity provides the actors that move across the map.
package entity

// Agent is the single actor exploring the cave.
type Agent struct {
	X, Y   int  // Current position on the map
	Symbol rune // Drawn in place of the palette glyph
}

// NewAgent creates an agent at the given position.
func NewAgent(x, y int) *Agent {
	return &Agent{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// Move updates the agent position by the given delta.
func (a *Agent) Move(dx, dy int) {
	a.X += dx
	a.Y += dy
}

// Position returns the current x, y coordinates.
func (a *Agent) Position() (int, int) {
	return a.X, a.Y
}
