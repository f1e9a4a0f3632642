package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Branch builds a parser that matches any one of alts, trying them in
// listing order (spec §4.5): all matches of alternative 0 are offered
// before any match of alternative 1, and so on — "ordered alternation, no
// priority other than listing order." Nested Branches among alts are
// flattened, as with Sequence.
//
// Branch panics with a *result.ProgrammerError if given zero alternatives:
// a branch with nothing to try is a construction bug, not an input that
// legitimately fails to match.
func Branch(alts ...Parser) Parser {
	flat := flattenBranch(alts)
	if len(flat) == 0 {
		panic(&result.ProgrammerError{Op: "Branch", Detail: "no alternatives given"})
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return branchedParser{alts: flat}
}

func flattenBranch(alts []Parser) []Parser {
	var flat []Parser
	for _, p := range alts {
		if bp, ok := p.(branchedParser); ok {
			flat = append(flat, bp.alts...)
		} else {
			flat = append(flat, p)
		}
	}
	return flat
}

type branchedParser struct {
	alts []Parser
}

func (bp branchedParser) CreateInstance(tokens []token.Token, pos int) Instance {
	inst := &branchedInstance{alts: bp.alts, tokens: tokens, pos: pos}
	inst.current = bp.alts[0].CreateInstance(tokens, pos)
	inst.nextIndex = 1
	inst.performTest()
	return inst
}

// branchedInstance holds the alternative currently being offered, and the
// index of the next untried one (spec §4.5).
type branchedInstance struct {
	alts      []Parser
	tokens    []token.Token
	pos       int
	current   Instance
	nextIndex int
}

func (bi *branchedInstance) performTest() {
	for {
		if _, matching := bi.current.End(); matching || bi.nextIndex >= len(bi.alts) {
			return
		}
		bi.current = bi.alts[bi.nextIndex].CreateInstance(bi.tokens, bi.pos)
		bi.nextIndex++
	}
}

func (bi *branchedInstance) End() (int, bool) {
	return bi.current.End()
}

func (bi *branchedInstance) TryAgain() {
	if _, matching := bi.current.End(); !matching {
		return
	}
	bi.current.TryAgain()
	bi.performTest()
}

func (bi *branchedInstance) GetResult(flags Flags) result.Result {
	if _, matching := bi.current.End(); !matching {
		panicNotMatching("Branch")
	}
	return bi.current.GetResult(flags)
}
