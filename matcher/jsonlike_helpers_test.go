package matcher_test

import (
	"github.com/hqurve/tokmatch/matcher"
	"github.com/hqurve/tokmatch/predicate"
	"github.com/hqurve/tokmatch/token"
)

// jsonLikeValue builds a tiny recursive object/array/number/literal
// grammar purely out of this package's own combinators (spec §8's
// "JSON-like smoke" boundary scenario) — it exists to exercise the
// engine's composability, not as a shipped JSON parser (explicitly out of
// scope for this module).
func jsonLikeValue() matcher.Parser {
	sym := func(r rune) matcher.Parser {
		return matcher.TokenMatch(predicate.SymbolIn(string(r)))
	}
	str := matcher.TokenMatch(predicate.Kind(token.String))
	num := matcher.TokenMatch(predicate.Kind(token.Number))
	lit := matcher.TokenMatch(predicate.OneOf("true", "false", "null"))

	var value matcher.Parser
	value = matcher.Lazy(func() matcher.Parser {
		pair := matcher.Sequence(str, sym(':'), value)
		pairList := matcher.Sequence(
			pair,
			matcher.ZeroOrMore(matcher.Sequence(sym(','), pair), matcher.Greedy),
		)
		object := matcher.Sequence(sym('{'), matcher.ZeroOrOne(pairList, matcher.Greedy), sym('}'))

		elemList := matcher.Sequence(
			value,
			matcher.ZeroOrMore(matcher.Sequence(sym(','), value), matcher.Greedy),
		)
		array := matcher.Sequence(sym('['), matcher.ZeroOrOne(elemList, matcher.Greedy), sym(']'))

		return matcher.Branch(num, lit, object, array)
	})
	return value
}

// jsonLikeSampleTokens is the token sequence for `{"k": 1, "m": [true, null]}`.
func jsonLikeSampleTokens() []token.Token {
	return []token.Token{
		token.NewSymbol('{'),
		token.NewString("k", token.Strong),
		token.NewSymbol(':'),
		token.NewInt(1),
		token.NewSymbol(','),
		token.NewString("m", token.Strong),
		token.NewSymbol(':'),
		token.NewSymbol('['),
		token.NewLabel("true"),
		token.NewSymbol(','),
		token.NewLabel("null"),
		token.NewSymbol(']'),
		token.NewSymbol('}'),
	}
}
