// Package token defines the tagged-union lexical value that the matching
// engine operates over, and nothing else: no positions, no source files, no
// comments. A Token is a pure value; two tokens compare equal iff they carry
// the same kind and the same payload.
package token

import "fmt"

// Token is a single lexical unit of the input alphabet. The zero value is
// the Unrecognized token and is never produced by a tokenizer; it exists
// only so that a missing Token (e.g. a zero-valued struct field) is
// detectable.
type Token struct {
	kind Kind

	text string // Whitespace run, Label name, or Symbol's single rune as a string

	strMode StringMode
	strText string // String token's post-processed text

	numMode NumberMode
	intVal  int64
	decVal  float64
}

// NewWhitespace constructs a Whitespace token holding the given run of
// whitespace characters verbatim.
func NewWhitespace(run string) Token {
	return Token{kind: Whitespace, text: run}
}

// NewLabel constructs a Label token.
func NewLabel(name string) Token {
	return Token{kind: Label, text: name}
}

// NewString constructs a String token with the given post-processing text
// and quoting mode.
func NewString(text string, mode StringMode) Token {
	return Token{kind: String, strMode: mode, strText: text}
}

// NewInt constructs a Number token whose value is the Integer arm.
func NewInt(v int64) Token {
	return Token{kind: Number, numMode: Integer, intVal: v}
}

// NewDecimal constructs a Number token whose value is the Decimal arm.
func NewDecimal(v float64) Token {
	return Token{kind: Number, numMode: Decimal, decVal: v}
}

// NewSymbol constructs a Symbol token for a single punctuation rune.
func NewSymbol(r rune) Token {
	return Token{kind: Symbol, text: string(r)}
}

// Kind reports which tagged-union variant this token is.
func (t Token) Kind() Kind {
	return t.kind
}

// Text returns the raw payload text for Whitespace and Label tokens, or the
// single-rune text for a Symbol token. It returns "" for String and Number
// tokens; use StringText/Int/DecimalValue for those.
func (t Token) Text() string {
	switch t.kind {
	case Whitespace, Label, Symbol:
		return t.text
	default:
		return ""
	}
}

// SymbolRune returns the rune carried by a Symbol token. It panics if
// called on a token of any other kind; this is a programmer error, not a
// data error.
func (t Token) SymbolRune() rune {
	if t.kind != Symbol {
		panic(fmt.Sprintf("token: SymbolRune called on a %v token", t.kind))
	}
	r := []rune(t.text)
	return r[0]
}

// StringMode returns the quoting mode of a String token. Panics on any
// other kind.
func (t Token) StringMode() StringMode {
	if t.kind != String {
		panic(fmt.Sprintf("token: StringMode called on a %v token", t.kind))
	}
	return t.strMode
}

// StringText returns the payload text of a String token. Panics on any
// other kind.
func (t Token) StringText() string {
	if t.kind != String {
		panic(fmt.Sprintf("token: StringText called on a %v token", t.kind))
	}
	return t.strText
}

// NumberMode returns which value arm (Integer or Decimal) a Number token
// carries. Panics on any other kind.
func (t Token) NumberMode() NumberMode {
	if t.kind != Number {
		panic(fmt.Sprintf("token: NumberMode called on a %v token", t.kind))
	}
	return t.numMode
}

// Int returns the Integer-arm value of a Number token. Panics if the token
// is not a Number, or if it is a Decimal-mode Number.
func (t Token) Int() int64 {
	if t.kind != Number || t.numMode != Integer {
		panic(fmt.Sprintf("token: Int called on a %v/%v token", t.kind, t.numMode))
	}
	return t.intVal
}

// DecimalValue returns the Decimal-arm value of a Number token. Panics if
// the token is not a Number, or if it is an Integer-mode Number.
func (t Token) DecimalValue() float64 {
	if t.kind != Number || t.numMode != Decimal {
		panic(fmt.Sprintf("token: DecimalValue called on a %v/%v token", t.kind, t.numMode))
	}
	return t.decVal
}

// Equal reports whether t and other carry the same kind and the same
// payload (structural equality, per spec).
func (t Token) Equal(other Token) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case Whitespace, Label, Symbol:
		return t.text == other.text
	case String:
		return t.strMode == other.strMode && t.strText == other.strText
	case Number:
		if t.numMode != other.numMode {
			return false
		}
		if t.numMode == Integer {
			return t.intVal == other.intVal
		}
		return t.decVal == other.decVal
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.kind {
	case Whitespace:
		return fmt.Sprintf("Whitespace(%q)", t.text)
	case Label:
		return fmt.Sprintf("Label(%q)", t.text)
	case String:
		return fmt.Sprintf("String(%q, %v)", t.strText, t.strMode)
	case Number:
		if t.numMode == Integer {
			return fmt.Sprintf("Number(%d, Integer)", t.intVal)
		}
		return fmt.Sprintf("Number(%g, Decimal)", t.decVal)
	case Symbol:
		return fmt.Sprintf("Symbol(%q)", t.text)
	default:
		return "Unrecognized"
	}
}
