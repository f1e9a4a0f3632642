package result

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/hqurve/tokmatch/token"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump renders r as an indented tree for debugging and test failure
// messages. It is not used by the matching engine itself — only by tests
// and by callers that want a human-readable view of a match.
func Dump(r Result) string {
	return dumpConfig.Sdump(resultView(r))
}

// resultView converts r into a plain, exported-field tree that spew can
// walk without reaching into this package's unexported fields directly.
func resultView(r Result) any {
	switch r.kind {
	case KindToken:
		return struct {
			Kind  string
			Token token.Token
		}{r.kind.String(), r.tok}
	case KindValue:
		return struct {
			Kind  string
			Value any
		}{r.kind.String(), r.value}
	case KindCompound:
		parts := make([]any, len(r.compound))
		for i, p := range r.compound {
			parts[i] = resultView(p)
		}
		return struct {
			Kind  string
			Parts []any
		}{r.kind.String(), parts}
	default:
		return r.kind.String()
	}
}
