package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Quantify builds a parser that matches between q.Min and q.Max
// (inclusive, q.Max == Unbounded meaning no upper bound) consecutive
// repetitions of inner, enumerated in the order q.Mode prescribes (spec
// §4.6). It panics with a *result.ProgrammerError if q is malformed.
//
// When q.Max == 0, validation forces q.Min == 0 too (Min <= Max and
// Min >= 0 leave no other value), so the only possible match is zero
// repetitions: Quantify short-circuits to Empty() rather than building a
// quantifier around a repetition count that can never be taken.
func Quantify(inner Parser, q Quant) Parser {
	q.validate()
	if q.Max == 0 {
		return Empty()
	}
	return quantifiedParser{inner: inner, quant: q}
}

// ZeroOrMore, OneOrMore and ZeroOrOne are the common Quant shapes, named
// the way regex-flavored call sites usually spell them.
func ZeroOrMore(inner Parser, mode Mode) Parser {
	return Quantify(inner, Quant{Min: 0, Max: Unbounded, Mode: mode})
}

func OneOrMore(inner Parser, mode Mode) Parser {
	return Quantify(inner, Quant{Min: 1, Max: Unbounded, Mode: mode})
}

func ZeroOrOne(inner Parser, mode Mode) Parser {
	return Quantify(inner, Quant{Min: 0, Max: 1, Mode: mode})
}

type quantifiedParser struct {
	inner Parser
	quant Quant
}

func (qp quantifiedParser) CreateInstance(tokens []token.Token, pos int) Instance {
	if qp.quant.Mode == Reluctant {
		return createReluctant(qp.inner, qp.quant, tokens, pos)
	}
	inst := &greedyInstance{
		inner:      qp.inner,
		tokens:     tokens,
		min:        qp.quant.Min,
		max:        qp.quant.Max,
		possessive: qp.quant.Mode == Possessive,
		startPos:   pos,
	}
	inst.performTest()
	return inst
}

// greedyInstance implements both Greedy and Possessive (spec §4.6): a
// stack of repetitions of inner, each positioned at the end of the one
// before it, extended as far as max allows. Greedy backtracks into an
// already-matched repetition, looking for a shorter match of it, before
// giving up a repetition entirely; Possessive never does — it offers only
// the first match the initial build reaches and then fails for good.
type greedyInstance struct {
	inner      Parser
	tokens     []token.Token
	min, max   int
	possessive bool
	startPos   int
	stack      []Instance
	matching   bool
}

func (gi *greedyInstance) currentEnd() int {
	if len(gi.stack) == 0 {
		return gi.startPos
	}
	end, _ := gi.stack[len(gi.stack)-1].End()
	return end
}

// extend pushes further repetitions, each inner's first alternative at the
// position reached so far, until max is hit or inner has no alternative
// left to offer at the current position.
func (gi *greedyInstance) extend() {
	for gi.max == Unbounded || len(gi.stack) < gi.max {
		end := gi.currentEnd()
		next := gi.inner.CreateInstance(gi.tokens, end)
		if _, ok := next.End(); !ok {
			return
		}
		gi.stack = append(gi.stack, next)
	}
}

// performTest is only ever the initial build: extend as far as possible,
// then, while the count falls short of min, ask the last repetition for its
// next alternative — re-extending after it if it has one (a shorter last
// repetition may leave room for more repetitions), giving it up if not. It
// fails only once every repetition has been given up.
func (gi *greedyInstance) performTest() {
	gi.extend()
	for len(gi.stack) < gi.min {
		if len(gi.stack) == 0 {
			gi.matching = false
			return
		}
		top := gi.stack[len(gi.stack)-1]
		top.TryAgain()
		if _, ok := top.End(); ok {
			gi.extend()
		} else {
			gi.stack = gi.stack[:len(gi.stack)-1]
		}
	}
	gi.matching = true
}

func (gi *greedyInstance) End() (int, bool) {
	if !gi.matching {
		return 0, false
	}
	return gi.currentEnd(), true
}

// TryAgain asks the last repetition for its next alternative; if it finds
// one, re-extends from there (a shorter or different last repetition may
// open room for more repetitions after it). If the last repetition has
// none left, it is given up entirely (the count drops by one, with no
// re-extension — inner is deterministic in its first alternative, so
// immediately re-extending would just recreate the repetition just given
// up) and, only if that still falls short of min, the new last repetition
// is asked the same question in turn.
func (gi *greedyInstance) TryAgain() {
	if !gi.matching {
		return
	}
	if gi.possessive {
		gi.matching = false
		return
	}
	for {
		if len(gi.stack) == 0 {
			gi.matching = false
			return
		}
		top := gi.stack[len(gi.stack)-1]
		top.TryAgain()
		if _, ok := top.End(); ok {
			gi.extend()
			if len(gi.stack) >= gi.min {
				gi.matching = true
				return
			}
			continue
		}
		gi.stack = gi.stack[:len(gi.stack)-1]
		if len(gi.stack) >= gi.min {
			gi.matching = true
			return
		}
	}
}

func (gi *greedyInstance) GetResult(flags Flags) result.Result {
	if !gi.matching {
		panicNotMatching("Quantified")
	}
	parts := make([]result.Result, len(gi.stack))
	for i, inst := range gi.stack {
		parts[i] = inst.GetResult(flags)
	}
	return result.FromCompound(parts...)
}

// reluctantInstance implements Reluctant (spec §4.6): it offers the
// shortest repetition count first. For a fixed count it behaves exactly
// like Sequence over that many copies of inner (full combinatorial
// enumeration of that count's alternatives), and only once every
// combination at the current count is exhausted does it rebuild fresh at
// count+1.
type reluctantInstance struct {
	inner    Parser
	tokens   []token.Token
	min, max int
	startPos int
	target   int
	stack    []Instance
	state    int
	matching bool
}

func createReluctant(inner Parser, q Quant, tokens []token.Token, pos int) Instance {
	ri := &reluctantInstance{inner: inner, tokens: tokens, min: q.Min, max: q.Max, startPos: pos}
	ri.matching = ri.buildForTarget(q.Min)
	return ri
}

// buildForTarget builds a fresh, first-alternative-chained run of exactly
// t repetitions and drives it to either a full match (state == t) or
// complete exhaustion (state == -1), exactly as sequentialInstance does
// for t copies of inner.
func (ri *reluctantInstance) buildForTarget(t int) bool {
	ri.target = t
	ri.state = 0
	if t == 0 {
		ri.stack = nil
		return true
	}
	ri.stack = []Instance{ri.inner.CreateInstance(ri.tokens, ri.startPos)}
	ri.driveToTarget()
	return ri.state == t
}

func (ri *reluctantInstance) driveToTarget() {
	t := ri.target
	for len(ri.stack) > 0 && ri.state < t {
		top := ri.stack[len(ri.stack)-1]
		if end, ok := top.End(); ok {
			ri.state++
			if ri.state < t {
				ri.stack = append(ri.stack, ri.inner.CreateInstance(ri.tokens, end))
			}
		} else {
			ri.state--
			ri.stack = ri.stack[:len(ri.stack)-1]
			if ri.state >= 0 {
				ri.stack[len(ri.stack)-1].TryAgain()
			}
		}
	}
}

func (ri *reluctantInstance) End() (int, bool) {
	if !ri.matching {
		return 0, false
	}
	if ri.target == 0 {
		return ri.startPos, true
	}
	return ri.stack[len(ri.stack)-1].End()
}

func (ri *reluctantInstance) TryAgain() {
	if !ri.matching {
		return
	}
	if ri.target > 0 {
		ri.state--
		ri.stack[len(ri.stack)-1].TryAgain()
		ri.driveToTarget()
		if ri.state == ri.target {
			return
		}
	}
	next := ri.target + 1
	if ri.max != Unbounded && next > ri.max {
		ri.matching = false
		return
	}
	ri.matching = ri.buildForTarget(next)
}

func (ri *reluctantInstance) GetResult(flags Flags) result.Result {
	if !ri.matching {
		panicNotMatching("Quantified")
	}
	parts := make([]result.Result, len(ri.stack))
	for i, inst := range ri.stack {
		parts[i] = inst.GetResult(flags)
	}
	return result.FromCompound(parts...)
}
