package ladder

import (
	"fmt"
	"strings"
)

// Mode is a difficulty level; it decides the word length.
type Mode int

const (
	// Easy plays 3-letter words.
	Easy Mode = iota + 1
	// Hard plays 5-letter words.
	Hard
)

// Modes lists every mode.
var Modes = []Mode{Easy, Hard}

// WordLength returns the word length played in m, or 0 for an invalid mode.
func (m Mode) WordLength() int {
	switch m {
	case Easy:
		return 3
	case Hard:
		return 5
	default:
		return 0
	}
}

func (m Mode) String() string {
	switch m {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "easy" or "hard" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ModeFor returns the mode playing wordLength, if any.
func ModeFor(wordLength int) (Mode, bool) {
	for _, m := range Modes {
		if m.WordLength() == wordLength {
			return m, true
		}
	}

	return 0, false
}
