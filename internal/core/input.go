package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // Up arrow, k - move cursor up
	ActionDown                  // Down arrow, j - move cursor down
	ActionLeft                  // Left arrow, h - move cursor left
	ActionRight                 // Right arrow, l - move cursor right
	ActionReveal                // Space, Enter, left click
	ActionFlag                  // F, right click
	ActionChord                 // C, middle click
	ActionXRay                  // 1
	ActionSafeClick             // 2
	ActionAutoFlag              // 3
	ActionTimeFreeze            // 4
	ActionRestart               // R - new board, same difficulty
	ActionNextDifficulty        // D - cycle difficulty and restart
	ActionHelp                  // ? - toggle full help
	ActionScreenshot            // Ctrl+S - save the board as text
	ActionBack                  // Esc - back to menu
	ActionQuit                  // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionUp:             "Up",
	ActionDown:           "Down",
	ActionLeft:           "Left",
	ActionRight:          "Right",
	ActionReveal:         "Reveal",
	ActionFlag:           "Flag",
	ActionChord:          "Chord",
	ActionXRay:           "XRay",
	ActionSafeClick:      "SafeClick",
	ActionAutoFlag:       "AutoFlag",
	ActionTimeFreeze:     "TimeFreeze",
	ActionRestart:        "Restart",
	ActionNextDifficulty: "NextDifficulty",
	ActionHelp:           "Help",
	ActionScreenshot:     "Screenshot",
	ActionBack:           "Back",
	ActionQuit:           "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMove returns true for cursor movement actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Delta returns the (row, col) cursor offset of a movement action.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	}
	return 0, 0
}
