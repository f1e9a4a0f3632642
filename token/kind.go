package token

import "fmt"

// Kind identifies which variant of the tagged-union Token a value is.
const (
	Unrecognized Kind = iota // the zero value; never produced by the tokenizer

	Whitespace // a maximal run of whitespace characters
	Label      // an identifier
	String     // a quoted string literal
	Number     // an integer or decimal numeral
	Symbol     // a single punctuation character
)

// Kind is the tag half of the Token tagged union.
type Kind byte

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Whitespace:
		return "Whitespace"
	case Label:
		return "Label"
	case String:
		return "String"
	case Number:
		return "Number"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("token.Kind(%d)", byte(k))
	}
}

// StringMode distinguishes the two quoting styles a String token may carry.
const (
	Strong StringMode = iota // double-quoted
	Weak                     // single-quoted
)

// StringMode is the quoting style of a String token's payload.
type StringMode byte

func (m StringMode) String() string {
	switch m {
	case Strong:
		return "Strong"
	case Weak:
		return "Weak"
	default:
		return fmt.Sprintf("token.StringMode(%d)", byte(m))
	}
}

// NumberMode distinguishes the two numeral shapes a Number token may carry.
const (
	Integer NumberMode = iota
	Decimal
)

// NumberMode is which arm of the Integer|Decimal value variant a Number
// token carries.
type NumberMode byte

func (m NumberMode) String() string {
	switch m {
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	default:
		return fmt.Sprintf("token.NumberMode(%d)", byte(m))
	}
}
