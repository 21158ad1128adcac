// Package game runs the interactive terminal sessions.
package game

// Mode selects which session a Game runs.
type Mode int

const (
	// ModeView inspects a generated map: directions pan, space toggles zoom.
	ModeView Mode = iota
	// ModePlay moves the agent: directions step, space clears adjacent walls.
	ModePlay
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModePlay:
		return "play"
	default:
		return "unknown"
	}
}
