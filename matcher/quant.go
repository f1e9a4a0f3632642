package matcher

import "github.com/hqurve/tokmatch/result"

// Mode selects among the three repetition-enumeration orders spec §4.6
// defines for Quantified. Greedy and Reluctant offer the same alternatives
// and differ only in which count of repetitions is offered first;
// Possessive offers a single alternative and never backtracks into an
// already-matched repetition.
type Mode int

const (
	// Greedy offers the longest repetition count first, and upon
	// backtracking will re-open an already-matched repetition to look for
	// a shorter match of it before reducing the repetition count.
	Greedy Mode = iota
	// Reluctant offers the shortest repetition count first, extending by
	// one repetition only once every shorter count (and this repetition's
	// own alternatives) has been exhausted.
	Reluctant
	// Possessive offers only the first match Greedy would offer, and never
	// backtracks: once that match is offered, TryAgain ends the
	// enumeration instead of re-opening or giving up a repetition.
	Possessive
)

func (m Mode) String() string {
	switch m {
	case Greedy:
		return "Greedy"
	case Reluctant:
		return "Reluctant"
	case Possessive:
		return "Possessive"
	default:
		return "Mode(?)"
	}
}

// Quant is a repetition bound: between Min and Max (inclusive) repetitions
// of the inner parser, enumerated in the order Mode prescribes. Max ==
// Unbounded means no upper bound; any other negative Max is rejected.
type Quant struct {
	Min  int
	Max  int
	Mode Mode
}

const Unbounded = -1

// validate panics with a *result.ProgrammerError if the bound is malformed:
// a negative Min, or a Max that is neither Unbounded nor >= Min, is always a
// construction-time bug and never a legitimate input-dependent failure.
func (q Quant) validate() {
	if q.Min < 0 {
		panic(&result.ProgrammerError{Op: "Quantified", Detail: "negative Min"})
	}
	if q.Max != Unbounded && q.Max < q.Min {
		panic(&result.ProgrammerError{Op: "Quantified", Detail: "Max below Min"})
	}
}
