package world

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimension is returned when a grid is too small for the operation.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrBorderCell is returned when clearing a border cell is not allowed.
	ErrBorderCell = errors.New("border cell cannot be cleared")
	// ErrInvalidDirection is returned when a move delta is not a unit step.
	ErrInvalidDirection = errors.New("invalid movement direction")
	// ErrInvalidTile is returned when storing a tile kind a grid cannot hold.
	ErrInvalidTile = errors.New("invalid structural tile")
)

// MaxCells bounds the number of cells in a grid.
const MaxCells = 1 << 24

// checkSize rejects sizes below minSide in either direction or above MaxCells
// in total. width*height is never computed here, so it cannot overflow.
func checkSize(width, height, minSide int) error {
	if width < minSide || height < minSide {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimension, width, height, minSide, minSide)
	}
	if width > MaxCells/height {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, width, height, MaxCells)
	}
	return nil
}

// Grid is a fixed-size W x H array of structural tiles (Empty or Wall),
// stored row-major.
type Grid struct {
	width  int
	height int
	cells  []TileKind
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(width, height int, fill TileKind) (*Grid, error) {
	if err := checkSize(width, height, 1); err != nil {
		return nil, err
	}
	if fill == Agent {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTile, fill)
	}
	return newGrid(width, height, fill), nil
}

func newGrid(width, height int, fill TileKind) *Grid {
	cells := make([]TileKind, width*height)
	if fill != Empty {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (empty).
// All rows must have the same length.
func ParseGrid(s string) (*Grid, error) {
	rows := strings.Fields(s)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}

	g := newGrid(len(rows[0]), len(rows), Empty)
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidDimension, y, len(row), g.width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.set(x, y, Wall)
			case '.':
				g.set(x, y, Empty)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, ch, x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsBorder returns true if p is on the outermost ring of the grid.
func (g *Grid) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.width-1 || p.Y == g.height-1
}

// TileAt returns the structural tile at p.
func (g *Grid) TileAt(p Point) (TileKind, error) {
	if !g.InBounds(p) {
		return Wall, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.at(p.X, p.Y), nil
}

// Set stores a structural tile at p.
func (g *Grid) Set(p Point, kind TileKind) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	if kind == Agent {
		return fmt.Errorf("%w: %s", ErrInvalidTile, kind)
	}
	g.set(p.X, p.Y, kind)
	return nil
}

func (g *Grid) at(x, y int) TileKind {
	return g.cells[y*g.width+x]
}

func (g *Grid) set(x, y int, kind TileKind) {
	g.cells[y*g.width+x] = kind
}

// Count returns the number of cells holding kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, c := range g.cells {
		if c == kind {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]TileKind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using tile runes.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.at(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
