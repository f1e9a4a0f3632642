package matcher

import (
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Empty builds a parser that matches zero tokens exactly once (spec §4.2).
func Empty() Parser {
	return emptyParser{}
}

type emptyParser struct{}

func (emptyParser) CreateInstance(_ []token.Token, pos int) Instance {
	return &emptyInstance{pos: pos, matching: true}
}

type emptyInstance struct {
	pos      int
	matching bool
}

func (e *emptyInstance) End() (int, bool) {
	if !e.matching {
		return 0, false
	}
	return e.pos, true
}

func (e *emptyInstance) TryAgain() {
	e.matching = false
}

func (e *emptyInstance) GetResult(Flags) result.Result {
	if !e.matching {
		panicNotMatching("Empty")
	}
	return result.FromCompound()
}
