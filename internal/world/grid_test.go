package world

import (
	"errors"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(0, 5, Wall); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewGrid(0, 5) error = %v, want ErrInvalidDimension", err)
	}
	if _, err := NewGrid(1<<32, 1<<32, Wall); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewGrid(1<<32, 1<<32) error = %v, want ErrInvalidDimension", err)
	}
	if _, err := NewGrid(5, 5, Agent); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("NewGrid(fill=Agent) error = %v, want ErrInvalidTile", err)
	}

	g, err := NewGrid(4, 3, Wall)
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("NewGrid() size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	if g.Count(Wall) != 12 {
		t.Errorf("NewGrid(fill=Wall) wall count = %d, want 12", g.Count(Wall))
	}
}

func TestGridAtAndSet(t *testing.T) {
	g, err := NewGrid(3, 3, Wall)
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}

	center := Point{X: 1, Y: 1}
	if err := g.Set(center, Empty); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if kind, err := g.TileAt(center); err != nil || kind != Empty {
		t.Errorf("TileAt(%s) = %v, %v; want empty, nil", center, kind, err)
	}

	if err := g.Set(center, Agent); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("Set(Agent) error = %v, want ErrInvalidTile", err)
	}

	outside := []Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3}}
	for _, p := range outside {
		if _, err := g.TileAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%s) error = %v, want ErrOutOfBounds", p, err)
		}
		if err := g.Set(p, Empty); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%s) error = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestGridIsBorder(t *testing.T) {
	g := newGrid(4, 3, Wall)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 3, Y: 1}, true},
		{Point{X: 1, Y: 2}, true},
		{Point{X: 1, Y: 1}, false},
		{Point{X: 2, Y: 1}, false},
	}

	for _, tt := range tests {
		if got := g.IsBorder(tt.p); got != tt.want {
			t.Errorf("IsBorder(%s) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	src := "####\n#..#\n####\n"
	g, err := ParseGrid(src)
	if err != nil {
		t.Fatalf("ParseGrid() error: %v", err)
	}
	if got := g.String(); got != src {
		t.Errorf("String() = %q, want %q", got, src)
	}

	if _, err := ParseGrid("###\n##\n"); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("ParseGrid(ragged) error = %v, want ErrInvalidDimension", err)
	}
	if _, err := ParseGrid("#x#"); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("ParseGrid(bad rune) error = %v, want ErrInvalidTile", err)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := newGrid(3, 3, Wall)
	c := g.Clone()
	c.set(1, 1, Empty)

	if g.at(1, 1) != Wall {
		t.Error("modifying a clone changed the original grid")
	}
	if g.Equal(c) {
		t.Error("Equal() = true for grids that differ")
	}
}

func TestTileKindString(t *testing.T) {
	tests := []struct {
		kind     TileKind
		expected string
		r        rune
	}{
		{Empty, "empty", '.'},
		{Wall, "wall", '#'},
		{Agent, "agent", '@'},
		{TileKind(99), "unknown", '?'},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("TileKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
		if got := tt.kind.Rune(); got != tt.r {
			t.Errorf("TileKind(%d).Rune() = %q, want %q", tt.kind, got, tt.r)
		}
	}
}
