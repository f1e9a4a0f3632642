package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Sequence builds a parser that matches each of parts in order (spec
// §4.4). Nested Sequences among parts are flattened, per spec: `A..B..C`,
// `(A..B)..C`, and `A..(B..C)` all produce the same flat parser and
// therefore equal result trees.
func Sequence(parts ...Parser) Parser {
	flat := flattenSequence(parts)
	switch len(flat) {
	case 0:
		return Empty()
	case 1:
		return flat[0]
	default:
		return sequentialParser{parts: flat}
	}
}

func flattenSequence(parts []Parser) []Parser {
	var flat []Parser
	for _, p := range parts {
		if sp, ok := p.(sequentialParser); ok {
			flat = append(flat, sp.parts...)
		} else {
			flat = append(flat, p)
		}
	}
	return flat
}

type sequentialParser struct {
	parts []Parser
}

func (sp sequentialParser) CreateInstance(tokens []token.Token, pos int) Instance {
	inst := &sequentialInstance{
		parts: sp.parts,
		tokens: tokens,
		state:  0,
	}
	inst.stack = []Instance{sp.parts[0].CreateInstance(tokens, pos)}
	inst.performTest()
	return inst
}

// sequentialInstance is the drive-loop state machine of spec §4.4: a stack
// of sub-instances S positioned consecutively, and a cursor `state` that is
// the index of the next sub-parser to advance into once the current top of
// S is confirmed matching, or -1 once the whole sequence has failed.
type sequentialInstance struct {
	parts  []Parser
	tokens []token.Token
	stack  []Instance
	state  int
}

// performTest is spec §4.4's perform_test: it both drives the initial match
// and propagates a backtrack requested by internal_try_again.
func (si *sequentialInstance) performTest() {
	k := len(si.parts)
	for len(si.stack) > 0 && si.state < k {
		top := si.stack[len(si.stack)-1]
		if end, ok := top.End(); ok {
			si.state++
			if si.state < k {
				si.stack = append(si.stack, si.parts[si.state].CreateInstance(si.tokens, end))
			}
		} else {
			si.state--
			si.stack = si.stack[:len(si.stack)-1]
			if si.state >= 0 {
				si.stack[len(si.stack)-1].TryAgain()
			}
		}
	}
}

func (si *sequentialInstance) End() (int, bool) {
	if si.state == -1 {
		return 0, false
	}
	return si.stack[len(si.stack)-1].End()
}

func (si *sequentialInstance) TryAgain() {
	if si.state == -1 {
		return
	}
	si.state--
	si.stack[len(si.stack)-1].TryAgain()
	si.performTest()
}

func (si *sequentialInstance) GetResult(flags Flags) result.Result {
	if si.state != len(si.parts) {
		panicNotMatching("Sequence")
	}
	parts := make([]result.Result, len(si.stack))
	for i, inst := range si.stack {
		parts[i] = inst.GetResult(flags)
	}
	return result.FromCompound(parts...)
}
