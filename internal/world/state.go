package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/cavemap/internal/entity"
)

// BorderPolicy decides whether ClearWall may clear the outermost ring.
type BorderPolicy int

const (
	// ProtectBorder refuses to clear border cells, so the agent can never
	// reach the edge of the grid.
	ProtectBorder BorderPolicy = iota
	// AllowBorder clears border cells like any other. Moves that would then
	// leave the grid fail with ErrOutOfBounds.
	AllowBorder
)

// String returns the policy name used in configuration.
func (b BorderPolicy) String() string {
	switch b {
	case ProtectBorder:
		return "protect"
	case AllowBorder:
		return "allow"
	default:
		return "unknown"
	}
}

// ParseBorderPolicy converts a configuration value into a BorderPolicy.
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "protect":
		return ProtectBorder, nil
	case "allow":
		return AllowBorder, nil
	default:
		return ProtectBorder, fmt.Errorf("unknown border policy %q", s)
	}
}

// StartPosition is where the agent is placed on a fresh map.
var StartPosition = Point{X: 1, Y: 1}

// Option configures a MapState.
type Option func(*MapState)

// WithBorderPolicy sets how ClearWall treats border cells.
func WithBorderPolicy(policy BorderPolicy) Option {
	return func(m *MapState) {
		m.policy = policy
	}
}

// MapState owns the live grid and the agent position. The agent is an
// overlay: the grid only ever stores Empty and Wall.
type MapState struct {
	grid    *Grid
	agent   *entity.Agent
	policy  BorderPolicy
	cleared mapset.Set[Point]
	moves   int
}

// NewMapState takes ownership of grid and places the agent at StartPosition.
// The start cell is forced Empty, since generation may leave a wall there.
func NewMapState(grid *Grid, opts ...Option) (*MapState, error) {
	if grid == nil || grid.width < minDimension || grid.height < minDimension {
		return nil, fmt.Errorf("%w: map state needs an interior cell", ErrInvalidDimension)
	}

	m := &MapState{
		grid:    grid,
		agent:   entity.NewAgent(StartPosition.X, StartPosition.Y),
		policy:  ProtectBorder,
		cleared: mapset.New[Point](),
	}
	for _, opt := range opts {
		opt(m)
	}

	grid.set(StartPosition.X, StartPosition.Y, Empty)
	return m, nil
}

// Width returns the number of columns.
func (m *MapState) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *MapState) Height() int { return m.grid.height }

// Policy returns the border policy in effect.
func (m *MapState) Policy() BorderPolicy { return m.policy }

// AgentPosition returns the agent's current cell.
func (m *MapState) AgentPosition() Point {
	x, y := m.agent.Position()
	return Point{X: x, Y: y}
}

// Agent returns the agent, for presentation.
func (m *MapState) Agent() *entity.Agent {
	return m.agent
}

// TileAt returns Agent for the agent's cell and the structural tile elsewhere.
// It has no side effects.
func (m *MapState) TileAt(p Point) (TileKind, error) {
	kind, err := m.grid.TileAt(p)
	if err != nil {
		return kind, err
	}
	if p == m.AgentPosition() {
		return Agent, nil
	}
	return kind, nil
}

// ClearWall sets the cell at p to Empty. Clearing an Empty cell is a no-op.
// Border cells are refused with ErrBorderCell unless the policy is AllowBorder.
func (m *MapState) ClearWall(p Point) error {
	if !m.grid.InBounds(p) {
		return fmt.Errorf("clear wall: %w: %s", ErrOutOfBounds, p)
	}
	if m.policy == ProtectBorder && m.grid.IsBorder(p) {
		return fmt.Errorf("clear wall: %w: %s", ErrBorderCell, p)
	}
	if m.grid.at(p.X, p.Y) == Wall {
		m.cleared.Put(p)
	}
	m.grid.set(p.X, p.Y, Empty)
	return nil
}

// ClearAdjacentWalls clears the four neighbours of the agent and returns how
// many of them were walls. Neighbours the policy refuses are skipped.
func (m *MapState) ClearAdjacentWalls() int {
	pos := m.AgentPosition()
	n := 0
	for _, d := range Directions {
		target := pos.Add(d)
		kind, err := m.grid.TileAt(target)
		if err != nil {
			continue
		}
		if err := m.ClearWall(target); err != nil {
			continue
		}
		if kind == Wall {
			n++
		}
	}
	return n
}

// Move steps the agent by delta. The zero vector is a no-op. A wall in the
// way rejects the move silently and reports false. Leaving the grid fails
// with ErrOutOfBounds, which is only reachable once a border cell is cleared.
func (m *MapState) Move(delta Point) (bool, error) {
	if !delta.IsStep() {
		return false, fmt.Errorf("move: %w: %s", ErrInvalidDirection, delta)
	}
	if delta.IsZero() {
		return false, nil
	}

	target := m.AgentPosition().Add(delta)
	kind, err := m.grid.TileAt(target)
	if err != nil {
		return false, fmt.Errorf("move: %w", err)
	}
	if !kind.IsPassable() {
		return false, nil
	}

	m.agent.Move(delta.X, delta.Y)
	m.moves++
	return true, nil
}

// ClearedCount returns how many distinct cells have been turned from wall
// into empty during this session.
func (m *MapState) ClearedCount() int {
	return m.cleared.Size()
}

// Moves returns the number of successful moves.
func (m *MapState) Moves() int {
	return m.moves
}

// Snapshot returns a copy of the structural grid.
func (m *MapState) Snapshot() *Grid {
	return m.grid.Clone()
}
