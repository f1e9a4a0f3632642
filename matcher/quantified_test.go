package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hqurve/tokmatch/matcher"
	"github.com/hqurve/tokmatch/token"
)

func xTokens(n int) []token.Token {
	toks := make([]token.Token, n)
	for i := range toks {
		toks[i] = token.NewLabel("x")
	}
	return toks
}

// collectEnds drives inst through every alternative it offers, in order,
// recording the End() reached at each one.
func collectEnds(inst matcher.Instance) []int {
	var ends []int
	for {
		end, matching := inst.End()
		if !matching {
			return ends
		}
		ends = append(ends, end)
		inst.TryAgain()
	}
}

func TestGreedyOffersLongestFirst(t *testing.T) {
	toks := xTokens(3)
	p := matcher.ZeroOrMore(label("x"), matcher.Greedy)
	inst := p.CreateInstance(toks, 0)

	require.Equal(t, []int{3, 2, 1, 0}, collectEnds(inst))
}

func TestReluctantOffersShortestFirst(t *testing.T) {
	toks := xTokens(3)
	p := matcher.ZeroOrMore(label("x"), matcher.Reluctant)
	inst := p.CreateInstance(toks, 0)

	require.Equal(t, []int{0, 1, 2, 3}, collectEnds(inst))
}

// TestGreedyAndReluctantAgreeAsSets is spec §8's "greedy and reluctant
// enumerate the same set of alternatives, in reverse order of each other."
func TestGreedyAndReluctantAgreeAsSets(t *testing.T) {
	toks := xTokens(4)
	greedy := collectEnds(matcher.ZeroOrMore(label("x"), matcher.Greedy).CreateInstance(toks, 0))
	reluctant := collectEnds(matcher.ZeroOrMore(label("x"), matcher.Reluctant).CreateInstance(toks, 0))

	require.Len(t, greedy, len(reluctant))
	for i := range greedy {
		require.Equal(t, greedy[i], reluctant[len(reluctant)-1-i])
	}
}

func TestPossessiveOffersOnlyTheLongestMatch(t *testing.T) {
	toks := xTokens(3)
	p := matcher.ZeroOrMore(label("x"), matcher.Possessive)
	inst := p.CreateInstance(toks, 0)

	require.Equal(t, []int{3}, collectEnds(inst))
}

func TestPossessiveCanFailWhereGreedyWouldBacktrack(t *testing.T) {
	toks := xTokens(3) // x x x, no trailing literal "x"
	// Possessive x+ followed by a literal "x": possessive consumes every
	// "x", leaving nothing for the trailing literal to match, and refuses
	// to give any of them back.
	p := matcher.Sequence(matcher.OneOrMore(label("x"), matcher.Possessive), label("x"))
	_, ok := matcher.Parse(p, toks, nil)
	require.False(t, ok)

	// The Greedy equivalent backtracks one repetition and succeeds.
	pGreedy := matcher.Sequence(matcher.OneOrMore(label("x"), matcher.Greedy), label("x"))
	_, ok = matcher.Parse(pGreedy, toks, nil)
	require.True(t, ok)
}

func TestQuantifyRespectsMinAndMax(t *testing.T) {
	toks := xTokens(5)
	p := matcher.Quantify(label("x"), matcher.Quant{Min: 2, Max: 4, Mode: matcher.Greedy})
	inst := p.CreateInstance(toks, 0)
	ends := collectEnds(inst)
	require.Equal(t, []int{4, 3, 2}, ends)
}

func TestQuantifyMaxZeroIsEquivalentToEmpty(t *testing.T) {
	toks := xTokens(1)
	p := matcher.Quantify(label("x"), matcher.Quant{Min: 0, Max: 0, Mode: matcher.Greedy})
	inst := p.CreateInstance(toks, 0)

	end, matching := inst.End()
	require.True(t, matching)
	require.Equal(t, 0, end)
	r := inst.GetResult(nil)
	require.Equal(t, 0, r.Len())

	inst.TryAgain()
	_, matching = inst.End()
	require.False(t, matching)
}

func TestQuantifyPanicsOnMalformedBound(t *testing.T) {
	err := matcher.CatchProgrammerError(func() {
		matcher.Quantify(label("x"), matcher.Quant{Min: -1, Max: 3})
	})
	require.Error(t, err)

	err = matcher.CatchProgrammerError(func() {
		matcher.Quantify(label("x"), matcher.Quant{Min: 5, Max: 2})
	})
	require.Error(t, err)
}

func TestOneOrMoreRequiresAtLeastOne(t *testing.T) {
	_, ok := matcher.Parse(matcher.OneOrMore(label("x"), matcher.Greedy), nil, nil)
	require.False(t, ok)
}
