// Command mapgen generates a cave map from an optional seed and shows it in
// the terminal for inspection.
//
// Usage:
//
//	mapgen [seed]
package main

import (
	"os"

	"github.com/samdwyer/cavemap/internal/game"
)

func main() {
	os.Exit(game.Launch("mapgen", game.ModeView, os.Args[1:]))
}
