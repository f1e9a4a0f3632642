package matcher

import (
	"github.com/hqurve/tokmatch/predicate"
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// TokenMatch builds a parser that matches a single token at its start
// position, iff pred accepts it (spec §4.3).
func TokenMatch(pred predicate.Predicate) Parser {
	return tokenParser{pred: pred}
}

type tokenParser struct {
	pred predicate.Predicate
}

func (tp tokenParser) CreateInstance(tokens []token.Token, pos int) Instance {
	inst := &tokenInstance{pos: pos}
	if pos < len(tokens) && tp.pred(tokens[pos]) {
		inst.tok = tokens[pos]
		inst.matching = true
	}
	return inst
}

type tokenInstance struct {
	pos      int
	tok      token.Token
	matching bool
}

func (t *tokenInstance) End() (int, bool) {
	if !t.matching {
		return 0, false
	}
	return t.pos + 1, true
}

func (t *tokenInstance) TryAgain() {
	t.matching = false
}

func (t *tokenInstance) GetResult(Flags) result.Result {
	if !t.matching {
		panicNotMatching("TokenMatch")
	}
	return result.FromToken(t.tok)
}
