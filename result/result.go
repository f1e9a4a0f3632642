// Package result implements the three-shaped result tree that a successful
// match produces (spec §3): TokenResult, ValueResult, and CompoundResult.
//
// The tree is, deliberately, not statically typed end-to-end: a
// CompoundResult (built by Sequence and Quantified in package matcher) is an
// ordered list of Results belonging to sub-parsers that may each carry a
// different T. Per spec §9's own design note, this is resolved by making the
// tree a dynamically-typed tagged union and enforcing the "T" contract only
// at its edges, via the checked-cast accessors below, which raise the
// "programmer error" class from spec §7 on a shape mismatch.
package result

import (
	"fmt"

	"github.com/hqurve/tokmatch/token"
)

// Kind identifies which of the three result shapes a Result is.
type Kind int

const (
	// KindToken is a TokenResult, produced by a single token match.
	KindToken Kind = iota
	// KindValue is a ValueResult, produced by a transform or Fixed.
	KindValue
	// KindCompound is a CompoundResult, produced by Sequence, Quantified,
	// or Empty.
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "Token"
	case KindValue:
		return "Value"
	case KindCompound:
		return "Compound"
	default:
		return fmt.Sprintf("result.Kind(%d)", int(k))
	}
}

// Result is the tagged-union node of the result tree.
type Result struct {
	kind     Kind
	tok      token.Token
	value    any
	compound []Result
}

// FromToken builds a TokenResult wrapping t.
func FromToken(t token.Token) Result {
	return Result{kind: KindToken, tok: t}
}

// FromValue builds a ValueResult wrapping v.
func FromValue(v any) Result {
	return Result{kind: KindValue, value: v}
}

// FromCompound builds a CompoundResult from parts, in order. A nil or
// empty parts yields a length-0 compound (the Empty parser's result, and a
// Sequence or Quantified of zero sub-matches).
func FromCompound(parts ...Result) Result {
	return Result{kind: KindCompound, compound: parts}
}

// Kind reports which of the three shapes this Result is.
func (r Result) Kind() Kind {
	return r.kind
}

// Len returns the number of elements in a CompoundResult. It panics on any
// other kind.
func (r Result) Len() int {
	if r.kind != KindCompound {
		panicShape("Len", KindCompound, r.kind)
	}
	return len(r.compound)
}

// At returns the i'th element of a CompoundResult (spec: "Indexable").
// Panics if r is not a CompoundResult, or if i is out of range.
func (r Result) At(i int) Result {
	if r.kind != KindCompound {
		panicShape("At", KindCompound, r.kind)
	}
	if i < 0 || i >= len(r.compound) {
		panic(&ProgrammerError{Op: "At", Detail: fmt.Sprintf("index %d out of range [0, %d)", i, len(r.compound))})
	}
	return r.compound[i]
}

// AsToken returns the token wrapped by a TokenResult. Panics on any other
// kind.
func AsToken(r Result) token.Token {
	if r.kind != KindToken {
		panicShape("AsToken", KindToken, r.kind)
	}
	return r.tok
}

// AsCompound returns the ordered elements of a CompoundResult. Panics on
// any other kind. The returned slice is the Result's own backing slice and
// must not be mutated by the caller.
func AsCompound(r Result) []Result {
	if r.kind != KindCompound {
		panicShape("AsCompound", KindCompound, r.kind)
	}
	return r.compound
}

// AsValue returns the value wrapped by a ValueResult, checked-cast to T.
// Panics if r is not a ValueResult, or if its wrapped value is not
// assignable to T.
func AsValue[T any](r Result) T {
	if r.kind != KindValue {
		panicShape("AsValue", KindValue, r.kind)
	}
	v, ok := r.value.(T)
	if !ok {
		var zero T
		panic(&ProgrammerError{
			Op:     "AsValue",
			Detail: fmt.Sprintf("value is %T, not %T", r.value, zero),
		})
	}
	return v
}

// Equal reports whether r and other have the same shape and, recursively,
// equal contents. Token equality defers to the wrapped Token's own Equal;
// value equality uses == (and panics, like Go's own map/== semantics, if a
// wrapped value type is not comparable — that panic is a programmer error
// in the same sense as the others in this package: it means a ValueResult
// was built over an incomparable type and then compared anyway).
func Equal(a, b Result) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindToken:
		return a.tok.Equal(b.tok)
	case KindValue:
		return a.value == b.value
	case KindCompound:
		if len(a.compound) != len(b.compound) {
			return false
		}
		for i := range a.compound {
			if !Equal(a.compound[i], b.compound[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func panicShape(op string, want, got Kind) {
	panic(&ProgrammerError{
		Op:     op,
		Detail: fmt.Sprintf("expected a %v result, got a %v result", want, got),
	})
}
