package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/cost"
)

const eps = 1e-9

// TestSubstitution_KnownPairs pins the four-term model on hand-computed pairs.
func TestSubstitution_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want cost.Terms
	}{
		// c→b at 0 of 3: keyboard (2,2)→(2,4) = 2; freq mean .03
		{"cat", "bat", cost.Terms{Position: 1.6, Vowel: 0, Keyboard: 0.04, Frequency: 0.291}},
		// t→d at 2 of 3: keyboard (0,4)→(1,2) = 3; freq mean .05
		{"bat", "bad", cost.Terms{Position: 1.2, Vowel: 0, Keyboard: 0.06, Frequency: 0.285}},
		// a→o at 1 of 3: both vowels; keyboard (1,0)→(0,8) = 9; freq mean .08
		{"cat", "cot", cost.Terms{Position: 1.4, Vowel: 0, Keyboard: 0.18, Frequency: 0.276}},
		// a→l at 1 of 3: vowel switch; keyboard (1,0)→(1,8) = 8; freq mean .07
		{"pat", "plt", cost.Terms{Position: 1.4, Vowel: 0.5, Keyboard: 0.16, Frequency: 0.279}},
	}
	for _, tc := range cases {
		got := cost.Breakdown(tc.a, tc.b)
		assert.InDelta(t, tc.want.Position, got.Position, eps, "%s→%s position", tc.a, tc.b)
		assert.InDelta(t, tc.want.Vowel, got.Vowel, eps, "%s→%s vowel", tc.a, tc.b)
		assert.InDelta(t, tc.want.Keyboard, got.Keyboard, eps, "%s→%s keyboard", tc.a, tc.b)
		assert.InDelta(t, tc.want.Frequency, got.Frequency, eps, "%s→%s frequency", tc.a, tc.b)
		assert.InDelta(t, tc.want.Total(), cost.Substitution(tc.a, tc.b), eps)
	}
}

// TestSubstitution_Symmetric checks that the cost does not depend on direction.
func TestSubstitution_Symmetric(t *testing.T) {
	pairs := [][2]string{{"cat", "bat"}, {"stone", "shone"}, {"lead", "load"}, {"qi", "xi"}}
	for _, p := range pairs {
		assert.InDelta(t, cost.Substitution(p[0], p[1]), cost.Substitution(p[1], p[0]), eps, "%v", p)
	}
}

// TestSubstitution_UnmappedLetter uses the keyboard fallback and zero frequency.
func TestSubstitution_UnmappedLetter(t *testing.T) {
	got := cost.Breakdown("ca", "c-")
	assert.InDelta(t, 1.2, got.Position, eps)
	assert.InDelta(t, cost.VowelPenalty, got.Vowel, eps)
	assert.InDelta(t, cost.KeyboardFallback, got.Keyboard, eps)
	assert.InDelta(t, 0.3*(1-0.045), got.Frequency, eps)
}

// TestSubstitution_PrefixCostsMore verifies that earlier positions are pricier
// when the letter change itself is identical.
func TestSubstitution_PrefixCostsMore(t *testing.T) {
	first := cost.Substitution("abbb", "cbbb")
	last := cost.Substitution("bbba", "bbbc")
	assert.Greater(t, first, last)
	assert.InDelta(t, 3*cost.PositionStep, first-last, eps)
}

// TestSubstitution_StrictlyPositive sweeps every letter pair at every position.
func TestSubstitution_StrictlyPositive(t *testing.T) {
	const L = 5
	min := cost.MinEdgeCost(L)
	for x := byte('a'); x <= 'z'; x++ {
		for y := byte('a'); y <= 'z'; y++ {
			if x == y {
				continue
			}
			for i := 0; i < L; i++ {
				a := []byte("mmmmm")
				b := []byte("mmmmm")
				a[i], b[i] = x, y
				c := cost.Substitution(string(a), string(b))
				require.Greater(t, c, 0.0)
				require.GreaterOrEqual(t, c, min)
			}
		}
	}
}

func TestDiffPositionAndHamming(t *testing.T) {
	i, ok := cost.DiffPosition("stone", "stove")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = cost.DiffPosition("same", "same")
	assert.False(t, ok)
	assert.Equal(t, 4, i)

	assert.Equal(t, 0, cost.Hamming("cold", "cold"))
	assert.Equal(t, 4, cost.Hamming("cold", "warm"))
	assert.Equal(t, 2, cost.Hamming("cold", "core"))
}

func TestMinEdgeCost(t *testing.T) {
	assert.Equal(t, 0.0, cost.MinEdgeCost(0))
	assert.InDelta(t, 1.2, cost.MinEdgeCost(3), eps)
	assert.InDelta(t, 1.2, cost.MinEdgeCost(5), eps)
}

func TestUniformAndDefault(t *testing.T) {
	assert.Equal(t, 1.0, cost.Uniform("cat", "bat"))
	assert.InDelta(t, cost.Substitution("cat", "bat"), cost.Default("cat", "bat"), eps)
}
