package ladder_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

func coldWarm(t *testing.T) *wordgraph.Graph {
	t.Helper()
	g, err := wordgraph.Build([]string{
		"cold", "cord", "card", "ward", "warm", "worm", "word", "corm", "lamp",
	})
	require.NoError(t, err)

	return g
}

func TestNewSession_Validation(t *testing.T) {
	g := coldWarm(t)

	_, err := ladder.NewSession(nil, "cold", "warm")
	require.ErrorIs(t, err, ladder.ErrNilGraph)

	_, err = ladder.NewSession(g, "cat", "warm")
	require.ErrorIs(t, err, ladder.ErrLengthMismatch)

	_, err = ladder.NewSession(g, "cold", "zzzz")
	require.ErrorIs(t, err, ladder.ErrUnknownWord)

	_, err = ladder.NewSession(g, "cold", "lamp")
	require.ErrorIs(t, err, ladder.ErrNoRoute)

	s, err := ladder.NewSession(g, " COLD ", "warm")
	require.NoError(t, err)
	assert.Equal(t, "cold", s.Current())
	assert.Equal(t, 4, s.Par)
	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)
}

func TestSession_PlayToWin(t *testing.T) {
	s, err := ladder.NewSession(coldWarm(t), "cold", "warm")
	require.NoError(t, err)

	require.ErrorIs(t, s.Move("card"), ladder.ErrInvalidMove)
	require.ErrorIs(t, s.Move("cold"), ladder.ErrInvalidMove)
	require.ErrorIs(t, s.Change(7, "x"), ladder.ErrInvalidMove)
	require.ErrorIs(t, s.Change(0, "xy"), ladder.ErrInvalidMove)
	assert.Empty(t, s.Moves())

	require.NoError(t, s.Change(2, "R"))
	require.NoError(t, s.Move("word"))
	require.NoError(t, s.Move("worm"))
	assert.False(t, s.Won())
	require.NoError(t, s.Move("warm"))
	assert.True(t, s.Won())

	st := s.State()
	assert.Equal(t, []string{"cord", "word", "worm", "warm"}, st.Moves)
	assert.Equal(t, "warm", st.Current)
	assert.True(t, st.Won)

	require.ErrorIs(t, s.Move("worm"), ladder.ErrFinished)
	_, err = s.Hint(search.UCS)
	require.ErrorIs(t, err, ladder.ErrFinished)
}

func TestSession_Hint(t *testing.T) {
	s, err := ladder.NewSession(coldWarm(t), "cold", "warm")
	require.NoError(t, err)

	for _, algo := range search.Algorithms {
		h, err := s.Hint(algo)
		require.NoError(t, err, algo.String())
		assert.Equal(t, ladder.Hint{Algorithm: algo, Word: "cord", Position: 2, Letter: "r"}, h)
	}

	require.NoError(t, s.Move("cord"))
	h, err := s.Hint(search.AStar)
	require.NoError(t, err)
	require.NoError(t, s.Change(h.Position, h.Letter), "a hint is always a legal move")
	assert.Equal(t, h.Word, s.Current())

	_, err = s.Hint(search.Algorithm(0))
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestSession_SameWordIsWon(t *testing.T) {
	s, err := ladder.NewSession(coldWarm(t), "worm", "worm")
	require.NoError(t, err)
	assert.True(t, s.Won())
	assert.Zero(t, s.Par)
}

func TestSession_ConcurrentReads(t *testing.T) {
	s, err := ladder.NewSession(coldWarm(t), "cold", "warm")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.State()
			_, _ = s.Hint(search.BFS)
		}()
	}
	require.NoError(t, s.Move("cord"))
	wg.Wait()
	assert.Equal(t, "cord", s.Current())
}

// TestSession_ConcurrentChanges checks every accepted letter change is
// applied to the word it was validated against.
func TestSession_ConcurrentChanges(t *testing.T) {
	g, err := wordgraph.Build([]string{"cat", "bat", "hat", "cot", "bot", "hot", "cut"})
	require.NoError(t, err)
	s, err := ladder.NewSession(g, "cat", "cut")
	require.NoError(t, err)

	type change struct {
		pos    int
		letter string
	}
	options := []change{{0, "c"}, {0, "b"}, {0, "h"}, {1, "a"}, {1, "o"}}

	var (
		mu       sync.Mutex
		accepted = map[change]int{}
		wg       sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c := options[(w+i)%len(options)]
				if err := s.Change(c.pos, c.letter); err == nil {
					mu.Lock()
					accepted[c]++
					mu.Unlock()
				} else {
					assert.ErrorIs(t, err, ladder.ErrInvalidMove)
				}
			}
		}()
	}
	wg.Wait()

	played := map[change]int{}
	prev := "cat"
	for _, m := range s.Moves() {
		pos, ok := cost.DiffPosition(prev, m)
		require.True(t, ok)
		played[change{pos, m[pos : pos+1]}]++
		prev = m
	}
	assert.Equal(t, accepted, played)
	assert.False(t, s.Won())
}

func TestMode(t *testing.T) {
	m, err := ladder.ParseMode("Easy")
	require.NoError(t, err)
	assert.Equal(t, ladder.Easy, m)
	assert.Equal(t, 3, m.WordLength())
	assert.Equal(t, 5, ladder.Hard.WordLength())
	assert.Equal(t, "hard", ladder.Hard.String())

	_, err = ladder.ParseMode("nightmare")
	require.ErrorIs(t, err, ladder.ErrUnknownMode)

	got, ok := ladder.ModeFor(5)
	assert.True(t, ok)
	assert.Equal(t, ladder.Hard, got)
	_, ok = ladder.ModeFor(4)
	assert.False(t, ok)
	assert.Zero(t, ladder.Mode(0).WordLength())
}
