// Package game implements the arcade progression around a cube: move
// counting, scoring, upgrades, prestige, timed play and achievements.
package game

import "fmt"

// State is where a session is in its play cycle.
type State int

const (
	StateIdle State = iota
	StateScrambled
	StateSolved
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScrambled:
		return "scrambled"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Mode selects the rule set for a session.
type Mode string

const (
	ModeStandard  Mode = "standard"
	ModeTimed     Mode = "timed"
	ModeChallenge Mode = "challenge"
)

// Modes lists the available modes in menu order.
var Modes = []Mode{ModeStandard, ModeTimed, ModeChallenge}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeStandard
}
