package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavemap/internal/world"
)

// Command is a discrete input decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandLeft
	CommandRight
	CommandUp
	CommandDown
	// CommandAction clears walls around the agent in play mode and toggles
	// zoom in the viewer.
	CommandAction
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandAction:
		return "action"
	default:
		return "unknown"
	}
}

// Direction returns the unit vector for directional commands and the zero
// vector otherwise.
func (c Command) Direction() world.Point {
	switch c {
	case CommandLeft:
		return world.Left
	case CommandRight:
		return world.Right
	case CommandUp:
		return world.Up
	case CommandDown:
		return world.Down
	default:
		return world.Point{}
	}
}

// CommandFor maps a key to a command. Arrow keys and w/a/s/d move, space is
// the action key, and q, Escape or Ctrl-C quit.
func CommandFor(key tcell.Key, ch rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		return CommandUp
	case tcell.KeyDown:
		return CommandDown
	case tcell.KeyLeft:
		return CommandLeft
	case tcell.KeyRight:
		return CommandRight
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return CommandQuit
		case 'w', 'W':
			return CommandUp
		case 's', 'S':
			return CommandDown
		case 'a', 'A':
			return CommandLeft
		case 'd', 'D':
			return CommandRight
		case ' ':
			return CommandAction
		}
	}
	return CommandNone
}

// CommandForEvent decodes a tcell key event.
func CommandForEvent(ev *tcell.EventKey) Command {
	return CommandFor(ev.Key(), ev.Rune())
}
