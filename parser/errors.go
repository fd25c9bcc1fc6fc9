package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shibukawa/letlang/tokenizer"
)

// Sentinel errors - Parser related
var (
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnterminatedStatement = errors.New("unterminated statement")
	ErrUnexpectedOperator    = errors.New("unexpected operator")
	ErrMalformedExpression   = errors.New("malformed expression")
)

// endOfInput is reported as Found when the token stream runs out
const endOfInput = "end of input"

// ParseError describes where parsing stopped and what was expected there
type ParseError struct {
	Err      error
	Expected string
	Found    string
	Position tokenizer.Position
	// Label is the source name. Parse leaves it empty; letlang.Compile fills it.
	Label string
}

func (e *ParseError) Error() string {
	var sb strings.Builder

	if e.Label != "" {
		fmt.Fprintf(&sb, "%s:%s: ", e.Label, e.Position)
	} else {
		fmt.Fprintf(&sb, "%s: ", e.Position)
	}

	sb.WriteString(e.Err.Error())

	switch {
	case e.Expected != "" && e.Found != "":
		fmt.Fprintf(&sb, ": expected %s, got %s", e.Expected, e.Found)
	case e.Found != "":
		fmt.Fprintf(&sb, ": %s", e.Found)
	}

	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// describe renders a token for the Found field: `symbol "="`, `number 10`
func describe(token tokenizer.Token) string {
	switch token.Kind {
	case tokenizer.Symbol, tokenizer.String:
		return fmt.Sprintf("%s %q", token.Kind, token.Value)
	default:
		return fmt.Sprintf("%s %s", token.Kind, token.Text)
	}
}
