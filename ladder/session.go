package ladder

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Sentinel errors for sessions.
var (
	// ErrNilGraph is returned when NewSession receives a nil graph.
	ErrNilGraph = errors.New("ladder: graph is nil")

	// ErrUnknownMode is returned by ParseMode for anything but easy or hard.
	ErrUnknownMode = errors.New("ladder: unknown mode")

	// ErrLengthMismatch indicates a word whose length differs from the graph's.
	ErrLengthMismatch = errors.New("ladder: word length does not match the graph")

	// ErrUnknownWord indicates a word missing from the dictionary.
	ErrUnknownWord = errors.New("ladder: not a valid word")

	// ErrNoRoute indicates start and target are not connected.
	ErrNoRoute = errors.New("ladder: no valid path exists between these words")

	// ErrInvalidMove indicates a word that is not one letter away from the current word.
	ErrInvalidMove = errors.New("ladder: invalid move")

	// ErrFinished indicates the target has already been reached.
	ErrFinished = errors.New("ladder: game is over")
)

// Hint suggests the next move.
type Hint struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Word      string           `json:"word"`
	Position  int              `json:"position"` // 0-based
	Letter    string           `json:"letter"`
}

// State is a point-in-time copy of a session.
type State struct {
	ID      string   `json:"id"`
	Start   string   `json:"start"`
	Target  string   `json:"target"`
	Current string   `json:"current"`
	Moves   []string `json:"moves"`
	Won     bool     `json:"won"`
	Par     int      `json:"par"`
}

// Session is one game from Start to Target.
type Session struct {
	ID     string
	Start  string
	Target string
	// Par is the fewest moves that reach Target from Start.
	Par int

	g       *wordgraph.Graph
	mu      sync.Mutex
	current string
	moves   []string
	won     bool
}

// NewSession validates a start/target pair and opens a game.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrLengthMismatch if a word does not have the graph's length.
//   - ErrUnknownWord if a word is not in the graph.
//   - ErrNoRoute if the words are in different components.
func NewSession(g *wordgraph.Graph, start, target string) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	start = strings.ToLower(strings.TrimSpace(start))
	target = strings.ToLower(strings.TrimSpace(target))

	for _, w := range []string{start, target} {
		if len(w) != g.WordLength() {
			return nil, fmt.Errorf("%w: %q must be %d letters", ErrLengthMismatch, w, g.WordLength())
		}
		if !g.Has(w) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
	}

	bfs, err := search.New(g, search.BFS)
	if err != nil {
		return nil, err
	}
	path, _ := bfs.FindPath(start, target)
	if !path.Found() {
		return nil, fmt.Errorf("%w: %q and %q", ErrNoRoute, start, target)
	}

	return &Session{
		ID:      uuid.NewString(),
		Start:   start,
		Target:  target,
		Par:     path.Edges(),
		g:       g,
		current: start,
		won:     start == target,
	}, nil
}

// Current returns the word the player is on.
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Moves returns a copy of the words played so far, start excluded.
func (s *Session) Moves() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.moves...)
}

// Won reports whether the target was reached.
func (s *Session) Won() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.won
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		ID:      s.ID,
		Start:   s.Start,
		Target:  s.Target,
		Current: s.current,
		Moves:   append([]string{}, s.moves...),
		Won:     s.won,
		Par:     s.Par,
	}
}

// Move plays word. It must be a graph neighbour of the current word.
func (s *Session) Move(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.play(word)
}

// Change replaces the letter at 0-based position pos of the current word and
// plays the result.
func (s *Session) Change(pos int, letter string) error {
	letter = strings.ToLower(letter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.won {
		return ErrFinished
	}
	cur := s.current
	if pos < 0 || pos >= len(cur) || len(letter) != 1 {
		return fmt.Errorf("%w: position %d letter %q", ErrInvalidMove, pos, letter)
	}

	return s.play(cur[:pos] + letter + cur[pos+1:])
}

// play applies word as the next move. s.mu must be held.
func (s *Session) play(word string) error {
	if s.won {
		return ErrFinished
	}
	if _, ok := s.g.Cost(s.current, word); !ok {
		return fmt.Errorf("%w: %q is not one letter away from %q in the dictionary", ErrInvalidMove, word, s.current)
	}
	s.current = word
	s.moves = append(s.moves, word)
	if word == s.Target {
		s.won = true
	}

	return nil
}

// Hint asks algo for the next word from the current one.
func (s *Session) Hint(algo search.Algorithm) (Hint, error) {
	s.mu.Lock()
	cur, won := s.current, s.won
	s.mu.Unlock()

	if won {
		return Hint{}, ErrFinished
	}
	f, err := search.New(s.g, algo)
	if err != nil {
		return Hint{}, err
	}
	next := f.NextStep(cur, s.Target)
	pos, ok := cost.DiffPosition(cur, next)
	if !ok {
		return Hint{}, fmt.Errorf("%w: from %q", ErrNoRoute, cur)
	}

	return Hint{Algorithm: algo, Word: next, Position: pos, Letter: next[pos : pos+1]}, nil
}
