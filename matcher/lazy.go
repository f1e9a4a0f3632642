package matcher

import (
	"sync"

	"github.com/hqurve/tokmatch/token"
)

// Lazy builds a parser whose definition is resolved only once, the first
// time any instance of it (or any copy of the returned value) is asked to
// CreateInstance (spec §4.7). It is the standard trick for writing a
// recursive grammar rule: a variable can be declared and referenced by
// Lazy before the rule it resolves to even exists, as long as resolve
// itself closes over that variable rather than evaluating it eagerly.
func Lazy(resolve func() Parser) Parser {
	return &lazyParser{resolve: resolve}
}

type lazyParser struct {
	once     sync.Once
	resolve  func() Parser
	resolved Parser
}

func (lp *lazyParser) CreateInstance(tokens []token.Token, pos int) Instance {
	lp.once.Do(func() {
		lp.resolved = lp.resolve()
	})
	return lp.resolved.CreateInstance(tokens, pos)
}
