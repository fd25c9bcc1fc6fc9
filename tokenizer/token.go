package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
)

// Kind represents the kind of a token
type Kind int

const (
	Keyword Kind = iota
	Identifier
	Symbol
	Number
	String
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case Symbol:
		return "symbol"
	case Number:
		return "number"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON/YAML output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Keywords is the reserved word table. A new keyword also needs a dispatch
// case in the parser's top-level loop.
var Keywords = map[string]struct{}{
	"let": {},
	"if":  {},
}

// IsKeyword reports whether word is reserved
func IsKeyword(word string) bool {
	_, ok := Keywords[word]
	return ok
}

// Position represents a zero-based position in the source code.
// Offset is a byte offset, Column counts runes since the last newline.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String returns line:column
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token represents a token
type Token struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
	// Number is only meaningful for Number tokens
	Number float64 `json:"number,omitempty" yaml:"number,omitempty"`
	// Text is the exact source span, quotes included
	Text     string   `json:"text" yaml:"text"`
	Position Position `json:"position" yaml:"position"`
}

// Literal returns the token value: float64 for numbers, string otherwise
func (t Token) Literal() any {
	if t.Kind == Number {
		return t.Number
	}

	return t.Value
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("%s(%s)@%s", t.Kind, strconv.FormatFloat(t.Number, 'g', -1, 64), t.Position)
	}

	return fmt.Sprintf("%s(%s)@%s", t.Kind, t.Value, t.Position)
}

// LexError is returned when the source cannot be tokenized
type LexError struct {
	Err      error
	Message  string
	Char     rune
	// Text is the source text of Char, which differs from it for invalid UTF-8
	Text     string
	Label    string
	Position Position
}

func (e *LexError) Error() string {
	if e.Err == ErrUnexpectedCharacter {
		return fmt.Sprintf("%s `%s' at %s:%d:%d", e.Message, e.charText(), e.Label, e.Position.Line, e.Position.Column)
	}

	return fmt.Sprintf("%s at %s:%d:%d", e.Message, e.Label, e.Position.Line, e.Position.Column)
}

// charText shows invalid bytes escaped, e.g. \xff
func (e *LexError) charText() string {
	if e.Text == "" {
		return string(e.Char)
	}

	if utf8.ValidString(e.Text) {
		return e.Text
	}

	return strings.Trim(strconv.Quote(e.Text), `"`)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func newLexError(err error, label string, pos Position, char rune) *LexError {
	return &LexError{
		Err:      err,
		Message:  err.Error(),
		Char:     char,
		Text:     string(char),
		Label:    label,
		Position: pos,
	}
}
