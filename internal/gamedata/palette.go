package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileStyleDef describes how one tile kind is drawn.
type TileStyleDef struct {
	Glyph      string `json:"glyph"`      // Single character (e.g., "@")
	Foreground string `json:"foreground"` // Hex color code (e.g., "#FFFFFF")
	Background string `json:"background"` // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileStyleDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return ' '
	}
	return rune(d.Glyph[0])
}

// Style returns the tcell style for this definition. Unparsable colors fall
// back to the terminal default.
func (d *TileStyleDef) Style() tcell.Style {
	style := tcell.StyleDefault
	if fg, err := ParseHexColor(d.Foreground); err == nil {
		style = style.Foreground(fg)
	}
	if bg, err := ParseHexColor(d.Background); err == nil {
		style = style.Background(bg)
	}
	return style
}

// validate checks both colors parse.
func (d *TileStyleDef) validate(name string) error {
	if _, err := ParseHexColor(d.Foreground); err != nil {
		return fmt.Errorf("%s foreground: %w", name, err)
	}
	if _, err := ParseHexColor(d.Background); err != nil {
		return fmt.Errorf("%s background: %w", name, err)
	}
	return nil
}

// Palette maps tile kinds to styles: Empty is light, Wall is dark and the
// agent uses an accent color.
type Palette struct {
	Empty TileStyleDef `json:"empty"`
	Wall  TileStyleDef `json:"wall"`
	Agent TileStyleDef `json:"agent"`
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Palette Palette      `json:"palette"`
	Status  TileStyleDef `json:"status"`
}

// LoadPalette loads the embedded palette.json and checks every color.
func LoadPalette() (*PaletteFile, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}

	defs := []struct {
		name string
		def  *TileStyleDef
	}{
		{"empty", &file.Palette.Empty},
		{"wall", &file.Palette.Wall},
		{"agent", &file.Palette.Agent},
		{"status", &file.Status},
	}
	for _, d := range defs {
		if err := d.def.validate(d.name); err != nil {
			return nil, fmt.Errorf("palette.json: %w", err)
		}
	}

	return &file, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *PaletteFile {
	file, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return file
}
