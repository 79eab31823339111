package wordgraph_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// BuildSuite exercises Build and the invariants of the graphs it returns.
type BuildSuite struct {
	suite.Suite
}

// TestScenarioCatBatBad builds the deduplicated {"cat","bat","bad","bad","cot"}.
func (s *BuildSuite) TestScenarioCatBatBad() {
	words, err := dictionary.Read(strings.NewReader("cat\nbat\nbad\nbad\ncot\n"), 3)
	require.NoError(s.T(), err)

	g, err := wordgraph.Build(words)
	require.NoError(s.T(), err)

	require.Equal(s.T(), wordgraph.Metadata{WordLength: 3, NodeCount: 4, EdgeCount: 3}, g.Metadata())
	require.Equal(s.T(), []string{"bad", "bat", "cat", "cot"}, g.Words())
	require.Equal(s.T(), []string{"bat", "cot"}, g.Neighbors("cat"))
	require.Equal(s.T(), []string{"bad", "cat"}, g.Neighbors("bat"))
	require.Equal(s.T(), []string{"bat"}, g.Neighbors("bad"))
	require.Equal(s.T(), []string{"cat"}, g.Neighbors("cot"))

	c, ok := g.Cost("cat", "bat")
	require.True(s.T(), ok)
	require.InDelta(s.T(), cost.Substitution("cat", "bat"), c, 1e-12)
	_, ok = g.Cost("cat", "bad")
	require.False(s.T(), ok, "cat and bad are two letters apart")
}

// TestInputErrors covers every rejected input.
func (s *BuildSuite) TestInputErrors() {
	_, err := wordgraph.Build(nil)
	require.ErrorIs(s.T(), err, wordgraph.ErrNoWords)

	_, err = wordgraph.Build([]string{"cat", ""})
	require.ErrorIs(s.T(), err, wordgraph.ErrEmptyWord)

	_, err = wordgraph.Build([]string{"cat", "cats"})
	require.ErrorIs(s.T(), err, wordgraph.ErrMixedLength)

	_, err = wordgraph.Build([]string{"bad", "cat", "bad"})
	require.ErrorIs(s.T(), err, wordgraph.ErrDuplicateWord)
}

// TestDoesNotAliasInput checks the builder sorts a copy.
func (s *BuildSuite) TestDoesNotAliasInput() {
	in := []string{"dog", "cat", "cot"}
	_, err := wordgraph.Build(in)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"dog", "cat", "cot"}, in)
}

// TestBucketCliques connects every member of a pattern bucket pairwise.
func (s *BuildSuite) TestBucketCliques() {
	g, err := wordgraph.Build([]string{"bat", "cat", "hat", "mat"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, g.Metadata().EdgeCount)
	for _, w := range g.Words() {
		require.Len(s.T(), g.Neighbors(w), 3, w)
	}
}

// TestIsolatedWords keeps words without neighbours as vertices with no edges.
func (s *BuildSuite) TestIsolatedWords() {
	g, err := wordgraph.Build([]string{"cat", "dog", "bat"})
	require.NoError(s.T(), err)
	require.True(s.T(), g.Has("dog"))
	require.Empty(s.T(), g.Neighbors("dog"))
	require.Empty(s.T(), g.Adjacency("dog"))
	require.Equal(s.T(), 0, g.Degree("dog"))
	require.Nil(s.T(), g.Adjacency("zzz"))
}

// TestMatchesBruteForce compares pattern buckets against all-pairs Hamming
// on random dictionaries and checks every structural invariant.
func (s *BuildSuite) TestMatchesBruteForce() {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		words := randomWords(rng, 3, "abcde", 40)
		g, err := wordgraph.Build(words)
		require.NoError(s.T(), err)
		require.NoError(s.T(), g.Validate())

		want := 0
		for i := range words {
			for j := i + 1; j < len(words); j++ {
				a, b := words[i], words[j]
				_, ok := g.Cost(a, b)
				if cost.Hamming(a, b) == 1 {
					want++
					require.True(s.T(), ok, "missing edge %s-%s", a, b)
				} else {
					require.False(s.T(), ok, "spurious edge %s-%s", a, b)
				}
			}
		}
		require.Equal(s.T(), want, g.Metadata().EdgeCount)

		sum := 0
		for _, w := range g.Words() {
			for n, c := range g.Adjacency(w) {
				back, ok := g.Cost(n, w)
				require.True(s.T(), ok)
				require.Equal(s.T(), c, back, "symmetry %s-%s", w, n)
			}
			sum += g.Degree(w)
		}
		require.Zero(s.T(), sum%2)
		require.Equal(s.T(), sum/2, g.Metadata().EdgeCount)
	}
}

// TestWithCostFn plugs the uniform cost model.
func (s *BuildSuite) TestWithCostFn() {
	g, err := wordgraph.Build([]string{"cat", "cot", "cog"}, wordgraph.WithCostFn(cost.Uniform))
	require.NoError(s.T(), err)
	g.EachEdge(func(a, b string, c float64) bool {
		require.Equal(s.T(), 1.0, c, "%s-%s", a, b)
		return true
	})
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// randomWords draws up to n distinct words of length l over alphabet.
func randomWords(rng *rand.Rand, l int, alphabet string, n int) []string {
	set := make(map[string]struct{}, n)
	buf := make([]byte, l)
	for len(set) < n {
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		set[string(buf)] = struct{}{}
	}
	out := make([]string, 0, n)
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
