// Command mapplay generates a cave map and lets an agent walk it, clearing
// the walls around it with the space bar.
//
// Usage:
//
//	mapplay [seed]
package main

import (
	"os"

	"github.com/samdwyer/cavemap/internal/game"
)

func main() {
	os.Exit(game.Launch("mapplay", game.ModePlay, os.Args[1:]))
}
