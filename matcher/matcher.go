// Package matcher is the backtracking matcher engine (spec §4): the
// immutable parser tree (Parser values) and the mutable, per-run matcher
// instances (Instance values) that drive it.
//
// A Parser is configuration only; it holds no per-match state and is safe
// to share across any number of concurrent parses (spec §5). An Instance is
// exclusively owned by a single in-progress match: creating one borrows the
// token slice and, for composite parsers, creates and owns its direct
// sub-instances, per spec §3's ownership invariant.
package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Flags is the parser-call-time configuration value threaded down the tree
// at result-construction time (spec §3). It is intentionally `any`: see
// the package doc of result for why the result tree, and therefore this
// contract, is dynamically typed at its core and statically typed only at
// its edges (the Trans*/Fixed* constructors).
type Flags = any

// Parser is an immutable node describing a matching rule. CreateInstance
// starts a new, independently-owned matcher instance for this parser at a
// fixed start position within tokens.
type Parser interface {
	CreateInstance(tokens []token.Token, pos int) Instance
}

// Instance is the mutable, per-run cursor through one parser's space of
// alternative matches starting at a fixed position (spec §4.1).
type Instance interface {
	// End reports the current alternative's one-past-last matched token
	// index, or (0, false) if the instance currently has no match.
	End() (end int, matching bool)

	// TryAgain attempts to advance to the next alternative match. If the
	// instance is already non-matching, it is a no-op: once End reports
	// false, it is reported forever after (spec invariant 2).
	TryAgain()

	// GetResult builds the result tree for the current alternative. It
	// must only be called while matching (panics with a ProgrammerError
	// otherwise), is pure with respect to the current alternative, and may
	// be called more than once for the same alternative.
	GetResult(flags Flags) result.Result
}

// Parse implements spec §4.1's full-input anchor policy: it creates the
// root instance at position 0 and repeatedly asks for the next alternative
// until one consumes every token, or none can. It is equivalent to
// ParseTraced with a zero Trace.
func Parse(p Parser, tokens []token.Token, flags Flags) (result.Result, bool) {
	return ParseTraced(p, tokens, flags, Trace{})
}

// ParseTraced is Parse with an optional diagnostic hook; see Trace.
func ParseTraced(p Parser, tokens []token.Token, flags Flags, tr Trace) (result.Result, bool) {
	inst := p.CreateInstance(tokens, 0)
	tr.parseStart(len(tokens))
	for {
		end, matching := inst.End()
		if !matching {
			tr.parseDone(false, 0)
			return result.Result{}, false
		}
		if end == len(tokens) {
			tr.parseDone(true, end)
			return inst.GetResult(flags), true
		}
		tr.tryAgain(end)
		inst.TryAgain()
	}
}

func panicNotMatching(op string) {
	panic(&result.ProgrammerError{Op: op, Detail: "GetResult called on a non-matching instance"})
}

// CatchProgrammerError runs f and converts any *result.ProgrammerError it
// panics with into a returned error, for callers (chiefly tests) that
// would rather assert on an error value than a panic. Any other panic
// value propagates unchanged, per spec §7's rule that only the
// programmer-error class is meant to be caught this way — a transform
// handler's own panic is not this package's to swallow.
func CatchProgrammerError(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if pe, ok := r.(*result.ProgrammerError); ok {
			err = pe
			return
		}
		panic(r)
	}()
	f()
	return nil
}
