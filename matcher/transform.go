package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// FlagTransform builds a parser that matches exactly where inner matches,
// but calls inner's GetResult with f(flags) in place of the flags it was
// itself given (spec §4.8) — letting a parser adjust what its descendants
// see without touching the shape of what comes back up.
func FlagTransform(inner Parser, f func(Flags) Flags) Parser {
	return transformParser{inner: inner, flagFn: f}
}

// ResultTransform builds a parser that matches exactly where inner
// matches, but rewrites inner's result tree through f — given the flags
// this parser itself was called with — before returning it.
func ResultTransform(inner Parser, f func(result.Result, Flags) result.Result) Parser {
	return transformParser{inner: inner, resultFn: f}
}

// Transform composes both: flagFn rewrites what inner's descendants see,
// resultFn then rewrites what inner hands back, given the ORIGINAL flags
// this parser was called with. Flag transformation happens first, result
// transformation second (spec §4.8's composition order).
func Transform(inner Parser, flagFn func(Flags) Flags, resultFn func(result.Result, Flags) result.Result) Parser {
	return transformParser{inner: inner, flagFn: flagFn, resultFn: resultFn}
}

// TransValue is ResultTransform's typed sugar: f computes a plain Go value
// from the inner result and the flags, and it is wrapped as a ValueResult
// — so call sites never construct a result.Result by hand for the common
// case of replacing a subtree with a single computed value.
func TransValue[T any](inner Parser, f func(result.Result, Flags) T) Parser {
	return ResultTransform(inner, func(r result.Result, flags Flags) result.Result {
		return result.FromValue(f(r, flags))
	})
}

type transformParser struct {
	inner    Parser
	flagFn   func(Flags) Flags
	resultFn func(result.Result, Flags) result.Result
}

func (tp transformParser) CreateInstance(tokens []token.Token, pos int) Instance {
	return &transformInstance{parser: tp, inner: tp.inner.CreateInstance(tokens, pos)}
}

type transformInstance struct {
	parser transformParser
	inner  Instance
}

func (ti *transformInstance) End() (int, bool) { return ti.inner.End() }

func (ti *transformInstance) TryAgain() { ti.inner.TryAgain() }

func (ti *transformInstance) GetResult(flags Flags) result.Result {
	innerFlags := flags
	if ti.parser.flagFn != nil {
		innerFlags = ti.parser.flagFn(flags)
	}
	r := ti.inner.GetResult(innerFlags)
	if ti.parser.resultFn != nil {
		r = ti.parser.resultFn(r, flags)
	}
	return r
}
