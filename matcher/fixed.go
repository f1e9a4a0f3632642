package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Fixed builds a parser that matches exactly where inner matches but
// discards inner's result tree entirely: GetResult always returns
// value(flags) instead, recomputed on every call rather than cached (spec
// §4.9) — e.g. to attach a handler-computed semantic value to a token
// shape whose own result tree nobody needs to see.
func Fixed(inner Parser, value func(Flags) result.Result) Parser {
	return fixedParser{inner: inner, value: value}
}

// FixedValue is Fixed's typed sugar: value is a plain Go function, wrapped
// as a ValueResult so call sites never construct a result.Result by hand.
func FixedValue[T any](inner Parser, value func(Flags) T) Parser {
	return Fixed(inner, func(flags Flags) result.Result {
		return result.FromValue(value(flags))
	})
}

type fixedParser struct {
	inner Parser
	value func(Flags) result.Result
}

func (fp fixedParser) CreateInstance(tokens []token.Token, pos int) Instance {
	return &fixedInstance{parser: fp, inner: fp.inner.CreateInstance(tokens, pos)}
}

type fixedInstance struct {
	parser fixedParser
	inner  Instance
}

func (fi *fixedInstance) End() (int, bool) { return fi.inner.End() }

func (fi *fixedInstance) TryAgain() { fi.inner.TryAgain() }

func (fi *fixedInstance) GetResult(flags Flags) result.Result {
	if _, matching := fi.inner.End(); !matching {
		panicNotMatching("Fixed")
	}
	return fi.parser.value(flags)
}
