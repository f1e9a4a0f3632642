// Package predicate builds the atomic matchers (TokenPredicate, per spec
// §3) that TokenParser instances (package matcher) test individual tokens
// against. A Predicate is a pure function; none of the factories here carry
// any hidden state, and none of them consume input themselves.
package predicate

import (
	"github.com/tidwall/btree"

	"github.com/hqurve/tokmatch/token"
)

// Predicate is the engine's atomic matcher: a pure Token -> bool test.
type Predicate func(token.Token) bool

// Any matches every token.
func Any() Predicate {
	return func(token.Token) bool { return true }
}

// Exact matches only a token structurally equal to want.
func Exact(want token.Token) Predicate {
	return func(t token.Token) bool { return t.Equal(want) }
}

// Kind matches any token of the given kind, regardless of payload.
func Kind(k token.Kind) Predicate {
	return func(t token.Token) bool { return t.Kind() == k }
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(t token.Token) bool { return !p(t) }
}

// And matches a token iff every one of ps matches it. An empty ps matches
// everything (the vacuous conjunction).
func And(ps ...Predicate) Predicate {
	return func(t token.Token) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Or matches a token iff at least one of ps matches it. An empty ps matches
// nothing (the vacuous disjunction).
func Or(ps ...Predicate) Predicate {
	return func(t token.Token) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// LabelText matches a Label token with exactly this text.
func LabelText(name string) Predicate {
	return Exact(token.NewLabel(name))
}

// SymbolIn matches a Symbol token whose rune occurs anywhere in chars.
func SymbolIn(chars string) Predicate {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return func(t token.Token) bool {
		if t.Kind() != token.Symbol {
			return false
		}
		_, ok := set[t.SymbolRune()]
		return ok
	}
}

// StringMode matches a String token with the given quoting mode.
func StringMode(mode token.StringMode) Predicate {
	return func(t token.Token) bool {
		return t.Kind() == token.String && t.StringMode() == mode
	}
}

// NumberMode matches a Number token with the given value arm.
func NumberMode(mode token.NumberMode) Predicate {
	return func(t token.Token) bool {
		return t.Kind() == token.Number && t.NumberMode() == mode
	}
}

// OneOf matches a Label token whose text, or a String token whose text, is
// a member of the given set. Membership is backed by a b-tree map rather
// than a plain Go map, mirroring the b-tree-backed rangeSet that
// NumberRange uses; asymptotically it is no better than a map for point
// lookups, but it keeps the lookup-table idiom consistent in this package.
func OneOf(values ...string) Predicate {
	var set btree.Map[string, struct{}]
	for _, v := range values {
		set.Set(v, struct{}{})
	}
	return func(t token.Token) bool {
		var text string
		switch t.Kind() {
		case token.Label:
			text = t.Text()
		case token.String:
			text = t.StringText()
		default:
			return false
		}
		_, ok := set.Get(text)
		return ok
	}
}

// NumberRange matches a Number token (either arm) whose numeric value
// falls within any of the given [min, max] ranges (inclusive), provided the
// ranges are disjoint. The ranges are stored as a rangeSet: a lookup checks
// only the range with the smallest end at or above the value, and of two
// ranges with the same end only the later one is kept, so with overlapping
// ranges a value inside one of them can fail to match.
func NumberRange(ranges ...[2]float64) Predicate {
	rs := newRangeSet(ranges)
	return func(t token.Token) bool {
		if t.Kind() != token.Number {
			return false
		}
		var v float64
		if t.NumberMode() == token.Integer {
			v = float64(t.Int())
		} else {
			v = t.DecimalValue()
		}
		return rs.contains(v)
	}
}
