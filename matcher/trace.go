package matcher

import "log/slog"

// Trace is an optional diagnostic hook for the top-level drive loop in
// ParseTraced. The zero value traces nothing and costs one nil check per
// call; it exists so that a caller debugging why a parse fails to anchor
// on the full input can watch the end position shrink and grow across
// top-level backtracks, without the engine itself taking on a logging
// dependency for its own sake.
//
// This module carries no logging dependency beyond the standard library:
// see DESIGN.md for why — the pack's one example of a library-shaped
// logging convention (reusee-tai's `logs` package) is wired to a systemd
// journal and a service's command-line flags, neither of which has an
// analogue in a pure function from tokens to a result tree.
type Trace struct {
	logger *slog.Logger
}

// WithTrace builds a Trace that logs to logger at Debug level.
func WithTrace(logger *slog.Logger) Trace {
	return Trace{logger: logger}
}

func (tr Trace) parseStart(numTokens int) {
	if tr.logger == nil {
		return
	}
	tr.logger.Debug("parse: start", "tokens", numTokens)
}

func (tr Trace) tryAgain(endBeforeRetry int) {
	if tr.logger == nil {
		return
	}
	tr.logger.Debug("parse: anchor not yet full, backtracking", "end", endBeforeRetry)
}

func (tr Trace) parseDone(matched bool, end int) {
	if tr.logger == nil {
		return
	}
	tr.logger.Debug("parse: done", "matched", matched, "end", end)
}
