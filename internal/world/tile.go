// Package world provides cave generation and the live map state.
package world

// TileKind classifies a single map cell.
type TileKind uint8

const (
	// Empty is an open cell the agent can stand on.
	Empty TileKind = iota
	// Wall is an impassable cell.
	Wall
	// Agent marks the cell holding the agent. It is an overlay computed from
	// the agent position and is never stored in a Grid.
	Agent
)

// IsPassable returns true if the agent can step onto the tile.
func (t TileKind) IsPassable() bool {
	return t != Wall
}

// Rune returns the tile's display character.
func (t TileKind) Rune() rune {
	switch t {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Agent:
		return '@'
	default:
		return '?'
	}
}

// String returns a human-readable tile name.
func (t TileKind) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Agent:
		return "agent"
	default:
		return "unknown"
	}
}
