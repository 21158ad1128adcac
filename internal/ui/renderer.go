package ui

import (
	"github.com/samdwyer/cavemap/internal/entity"
	"github.com/samdwyer/cavemap/internal/gamedata"
	"github.com/samdwyer/cavemap/internal/world"
)

// TileSource is the read-only view of a map the renderer draws from.
// Both *world.Grid and *world.MapState satisfy it.
type TileSource interface {
	Width() int
	Height() int
	TileAt(p world.Point) (world.TileKind, error)
}

// AgentSource is a TileSource that also carries the agent. The agent's own
// symbol replaces the palette glyph for its cell.
type AgentSource interface {
	TileSource
	Agent() *entity.Agent
}

// Renderer handles drawing maps to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.PaletteFile
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.PaletteFile) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the part of src under vp, then the status line on the row
// below the viewport.
func (r *Renderer) Render(src TileSource, vp Viewport, status string) {
	r.screen.Clear()

	agentGlyph := r.palette.Palette.Agent.GlyphRune()
	if as, ok := src.(AgentSource); ok {
		agentGlyph = as.Agent().Symbol
	}

	for sy := 0; sy < vp.Height; sy++ {
		for sx := 0; sx < vp.Width; sx++ {
			kind, ok := SampleBlock(src, vp, sx, sy)
			if !ok {
				continue
			}
			def := r.tileDef(kind)
			glyph := def.GlyphRune()
			if kind == world.Agent {
				glyph = agentGlyph
			}
			r.screen.SetContent(sx, sy, glyph, def.Style())
		}
	}

	r.RenderMessage(status, vp.Height)
	r.screen.Show()
}

// RenderMessage displays a message on the given row, padded to the screen width.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := r.palette.Status.Style()
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range msg {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', style)
	}
}

func (r *Renderer) tileDef(kind world.TileKind) *gamedata.TileStyleDef {
	switch kind {
	case world.Agent:
		return &r.palette.Palette.Agent
	case world.Wall:
		return &r.palette.Palette.Wall
	default:
		return &r.palette.Palette.Empty
	}
}

// SampleBlock classifies the block of map cells behind screen cell (sx, sy).
// The agent wins over empty, and empty wins over wall, so open passages stay
// visible when zoomed out. It reports false if the block is off the map.
func SampleBlock(src TileSource, vp Viewport, sx, sy int) (world.TileKind, bool) {
	lo, hi := vp.Block(sx, sy)

	found := false
	result := world.Wall
	for y := lo.Y; y < hi.Y; y++ {
		for x := lo.X; x < hi.X; x++ {
			kind, err := src.TileAt(world.Point{X: x, Y: y})
			if err != nil {
				continue
			}
			found = true
			switch kind {
			case world.Agent:
				return world.Agent, true
			case world.Empty:
				result = world.Empty
			}
		}
	}
	return result, found
}
