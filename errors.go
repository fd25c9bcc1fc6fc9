package letlang

import (
	"errors"

	"github.com/shibukawa/letlang/parser"
	"github.com/shibukawa/letlang/tokenizer"
)

// Common errors used throughout the letlang package
var (
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")

	// Tokenizer errors

	// ErrUnexpectedCharacter indicates the lexer met a character outside every class.
	ErrUnexpectedCharacter = tokenizer.ErrUnexpectedCharacter
	// ErrUnterminatedString indicates end of input inside a string literal.
	ErrUnterminatedString = tokenizer.ErrUnterminatedString

	// Parser errors

	// ErrUnexpectedToken indicates a token of the wrong kind or value.
	ErrUnexpectedToken = parser.ErrUnexpectedToken
	// ErrUnterminatedStatement indicates a let statement without ';'.
	ErrUnterminatedStatement = parser.ErrUnterminatedStatement
	// ErrUnexpectedOperator indicates a symbol that is not an arithmetic operator.
	ErrUnexpectedOperator = parser.ErrUnexpectedOperator
	// ErrMalformedExpression indicates operands and operators do not alternate.
	ErrMalformedExpression = parser.ErrMalformedExpression
)
