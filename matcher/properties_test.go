package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hqurve/tokmatch/matcher"
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// TestParseRequiresFullInputAnchor exercises spec §4.1 directly: a Branch
// whose first alternative would match a strict prefix must be skipped over
// in favor of one that anchors on the whole input, with no special-casing
// in Parse itself beyond "keep asking for the next alternative."
func TestParseRequiresFullInputAnchor(t *testing.T) {
	toks := []token.Token{token.NewLabel("a"), token.NewLabel("b")}
	p := matcher.Branch(
		label("a"),                    // matches a strict prefix only
		matcher.Sequence(label("a"), label("b")), // matches everything
	)

	r, ok := matcher.Parse(p, toks, nil)
	require.True(t, ok)
	require.Equal(t, result.KindCompound, r.Kind())
	require.Equal(t, 2, r.Len())
}

// TestGetResultIsPureAcrossCalls is spec invariant: GetResult may be called
// more than once for the same alternative and must return equal trees.
func TestGetResultIsPureAcrossCalls(t *testing.T) {
	toks := []token.Token{token.NewLabel("a"), token.NewLabel("b")}
	p := matcher.Sequence(label("a"), label("b"))
	inst := p.CreateInstance(toks, 0)

	r1 := inst.GetResult(nil)
	r2 := inst.GetResult(nil)
	require.True(t, result.Equal(r1, r2))
}

// TestEndIsFalseForeverAfterFirstFalse is spec invariant 2: once an
// instance reports no match, it must keep reporting no match no matter how
// many further times TryAgain is called.
func TestEndIsFalseForeverAfterFirstFalse(t *testing.T) {
	p := matcher.Sequence(label("a"), label("b"))
	inst := p.CreateInstance([]token.Token{token.NewLabel("a"), token.NewLabel("z")}, 0)

	_, matching := inst.End()
	require.False(t, matching)
	for i := 0; i < 3; i++ {
		inst.TryAgain()
		_, matching = inst.End()
		require.False(t, matching)
	}
}

// TestJSONLikeSmoke builds a tiny recursive object/number grammar purely
// out of this package's own combinators and checks it actually parses
// nested structure — a test of the engine's composability, not a shipped
// JSON parser.
func TestJSONLikeSmoke(t *testing.T) {
	value := jsonLikeValue()
	toks := jsonLikeSampleTokens()

	r, ok := matcher.Parse(value, toks, nil)
	require.True(t, ok)
	require.Equal(t, result.KindCompound, r.Kind())

	trailing := append(append([]token.Token{}, toks...), token.NewSymbol('}'))
	_, ok = matcher.Parse(value, trailing, nil)
	require.False(t, ok)
}
