// Package tokenize turns a string into the list of tokens the matching
// engine (package matcher) runs over (spec §6.2). It is the one place in
// this module that reads raw UTF-8 text instead of an already-tokenized
// stream.
//
// Its scanning style — a cursor over the input plus Peek/Pop/TakeWhile
// helpers — follows bufbuild-protocompile's lexer; the grapheme-aware
// whitespace scan additionally uses rivo/uniseg, as that lexer does for
// its own grapheme-cluster-aware scans, so that a multi-rune grapheme
// (e.g. a combining accent) inside a whitespace run is never split across
// two Whitespace tokens.
package tokenize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/hqurve/tokmatch/token"
)

// Options controls the four independently-togglable lexical choices spec
// §6.2 names. The zero value is the strictest reading of the grammar:
// whitespace discarded, labels letters-only, numbers integer-only, and
// escape sequences left untouched in string payloads.
type Options struct {
	// IncludeWhitespace, if true, emits Whitespace tokens for each maximal
	// run of whitespace; otherwise whitespace is skipped silently.
	IncludeWhitespace bool
	// LabelsHaveDigits, if true, allows a label to continue with digits
	// after its first letter; otherwise a label is letters only.
	LabelsHaveDigits bool
	// CaptureDecimalNumbers, if true, a digit run followed by "." and a
	// further digit run is captured as one Decimal token; otherwise it
	// lexes as Integer, Symbol('.'), Integer.
	CaptureDecimalNumbers bool
	// ResolveEscapedStringCharacters, if true, an in-string "\X" is
	// replaced by "X" in the token's payload; otherwise the backslash is
	// kept verbatim.
	ResolveEscapedStringCharacters bool
}

// fixedSymbols is the closed set of single-character Symbol tokens spec
// §6.2 defines; nothing outside Whitespace, Label, String, Number, and
// this set is a legal character in the input alphabet.
const fixedSymbols = `!~&^$%#@=+-*/\|_;:?,.[{(<]})>`

// Error is a positioned tokenization failure (spec §7): the input
// contained a character that is neither whitespace, part of a label,
// string, or number, nor one of the fixed Symbol characters, or a string
// literal was left unterminated.
type Error struct {
	Offset int // byte offset of the offending character
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tokenize: byte offset %d: %s", e.Offset, e.Detail)
}

// Tokenize scans input into a list of tokens per Options, or returns the
// first Error encountered.
func Tokenize(input string, opts Options) ([]token.Token, error) {
	lx := &lexer{text: input, opts: opts}
	var toks []token.Token

	for !lx.done() {
		start := lx.cursor
		r := lx.peek()

		switch {
		case isSpace(r):
			run := lx.takeGraphemesWhile(func(g string) bool {
				return isSpace(decodeRune(g))
			})
			if opts.IncludeWhitespace {
				toks = append(toks, token.NewWhitespace(run))
			}

		case unicode.IsLetter(r):
			toks = append(toks, token.NewLabel(lx.scanLabel()))

		case r == '\'' || r == '"':
			tok, err := lx.scanString()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case unicode.IsDigit(r):
			toks = append(toks, lx.scanNumber())

		case strings.ContainsRune(fixedSymbols, r):
			lx.pop()
			toks = append(toks, token.NewSymbol(r))

		default:
			return nil, &Error{Offset: start, Detail: fmt.Sprintf("unrecognized character %q", r)}
		}
	}

	return toks, nil
}

func isSpace(r rune) bool {
	return r != -1 && unicode.IsSpace(r)
}

type lexer struct {
	text   string
	cursor int
	opts   Options
}

func (l *lexer) done() bool {
	return l.rest() == ""
}

func (l *lexer) rest() string {
	return l.text[l.cursor:]
}

// peek returns the next rune without consuming it, or -1 at end of input.
func (l *lexer) peek() rune {
	return decodeRune(l.rest())
}

// pop consumes and returns the next rune, or -1 at end of input.
func (l *lexer) pop() rune {
	r := l.peek()
	if r != -1 {
		l.cursor += utf8.RuneLen(r)
	}
	return r
}

// takeWhile consumes runes while f holds, and returns the consumed text.
func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for {
		r := l.peek()
		if r == -1 || !f(r) {
			break
		}
		l.pop()
	}
	return l.text[start:l.cursor]
}

// takeGraphemesWhile consumes grapheme clusters while f holds, treating
// each cluster as an indivisible unit so a combining rune is never split
// from its base.
func (l *lexer) takeGraphemesWhile(f func(string) bool) string {
	start := l.cursor
	for gs := uniseg.NewGraphemes(l.rest()); gs.Next(); {
		g := gs.Str()
		if !f(g) {
			break
		}
		l.cursor += len(g)
	}
	return l.text[start:l.cursor]
}

func (l *lexer) scanLabel() string {
	start := l.cursor
	l.pop() // the leading letter, already confirmed by the caller
	l.takeWhile(func(r rune) bool {
		if l.opts.LabelsHaveDigits {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}
		return unicode.IsLetter(r)
	})
	return l.text[start:l.cursor]
}

func (l *lexer) scanNumber() token.Token {
	intPart := l.takeWhile(unicode.IsDigit)

	if l.opts.CaptureDecimalNumbers && l.peek() == '.' {
		save := l.cursor
		l.pop()
		fracPart := l.takeWhile(unicode.IsDigit)
		if fracPart != "" {
			v, _ := strconv.ParseFloat(intPart+"."+fracPart, 64)
			return token.NewDecimal(v)
		}
		l.cursor = save // no fractional digits after '.': not a decimal
	}

	v, _ := strconv.ParseInt(intPart, 10, 64)
	return token.NewInt(v)
}

func (l *lexer) scanString() (token.Token, error) {
	start := l.cursor
	quote := l.pop()
	mode := token.Strong
	if quote == '\'' {
		mode = token.Weak
	}

	var b strings.Builder
	for {
		r := l.peek()
		if r == -1 {
			return token.Token{}, &Error{Offset: start, Detail: "unterminated string literal"}
		}
		if r == '\\' {
			escStart := l.cursor
			l.pop()
			esc := l.pop()
			if esc == -1 {
				return token.Token{}, &Error{Offset: escStart, Detail: "dangling escape at end of input"}
			}
			if l.opts.ResolveEscapedStringCharacters {
				b.WriteRune(esc)
			} else {
				b.WriteRune('\\')
				b.WriteRune(esc)
			}
			continue
		}
		l.pop()
		if r == quote {
			return token.NewString(b.String(), mode), nil
		}
		b.WriteRune(r)
	}
}

// decodeRune wraps utf8.DecodeRuneInString so callers get -1 at end of
// input instead of having to special-case an empty string themselves.
func decodeRune(s string) rune {
	if s == "" {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
