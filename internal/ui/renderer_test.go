package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavemap/internal/gamedata"
	"github.com/samdwyer/cavemap/internal/world"
)

func testMapState(t *testing.T) *world.MapState {
	t.Helper()
	grid, err := world.ParseGrid(`
		########
		#..#####
		#..#####
		########
		########
		########`)
	if err != nil {
		t.Fatalf("ParseGrid() error: %v", err)
	}
	m, err := world.NewMapState(grid)
	if err != nil {
		t.Fatalf("NewMapState() error: %v", err)
	}
	return m
}

func TestSampleBlock(t *testing.T) {
	m := testMapState(t)

	tests := []struct {
		name   string
		vp     Viewport
		sx, sy int
		want   world.TileKind
		ok     bool
	}{
		{"agent cell", NewViewport(8, 6), 1, 1, world.Agent, true},
		{"empty cell", NewViewport(8, 6), 2, 2, world.Empty, true},
		{"wall cell", NewViewport(8, 6), 5, 4, world.Wall, true},
		{"off map", NewViewport(8, 6), 9, 0, world.Wall, false},
		{"zoomed block with agent", Viewport{Width: 4, Height: 3, Scale: 2}, 0, 0, world.Agent, true},
		{"zoomed block with empty", Viewport{Width: 4, Height: 3, Scale: 2}, 1, 1, world.Empty, true},
		{"zoomed wall block", Viewport{Width: 4, Height: 3, Scale: 2}, 3, 2, world.Wall, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SampleBlock(m, tt.vp, tt.sx, tt.sy)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("SampleBlock(%d,%d) = %v, %v; want %v, %v", tt.sx, tt.sy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRendererDrawsAgentAndStatus(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	defer screen.Close()
	sim.SetSize(10, 7)

	m := testMapState(t)
	r := NewRenderer(screen, gamedata.MustLoadPalette())
	r.Render(m, NewViewport(10, 6), "seed 1")

	if ch, _, _, _ := sim.GetContent(1, 1); ch != '@' {
		t.Errorf("agent cell rune = %q, want '@'", ch)
	}

	var status strings.Builder
	for x := 0; x < 6; x++ {
		ch, _, _, _ := sim.GetContent(x, 6)
		status.WriteRune(ch)
	}
	if status.String() != "seed 1" {
		t.Errorf("status line = %q, want %q", status.String(), "seed 1")
	}
}

func TestRendererDrawsAgentSymbol(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	defer screen.Close()
	sim.SetSize(10, 7)

	m := testMapState(t)
	m.Agent().Symbol = 'A'
	r := NewRenderer(screen, gamedata.MustLoadPalette())
	r.Render(m, NewViewport(10, 6), "")

	if ch, _, _, _ := sim.GetContent(1, 1); ch != 'A' {
		t.Errorf("agent cell rune = %q, want 'A'", ch)
	}

	// A bare grid has no agent; its cells keep their palette glyphs.
	r.Render(m.Snapshot(), NewViewport(10, 6), "")
	if ch, _, _, _ := sim.GetContent(1, 1); ch == 'A' {
		t.Error("grid without an agent drew the agent symbol")
	}
}
