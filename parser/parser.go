// Package parser turns a token stream into statement nodes.
//
// The grammar is recursive descent with a single forward cursor and one token
// of context. The only complete statement is
//
//	let <identifier> = <operand> (<operator> <operand>)* ;
//
// whose expression is stored flat as an ast.MathOp. `if` is reserved and
// parses nothing yet. Any other top-level token is skipped unless
// Options.StrictTopLevel is set.
package parser

import (
	"fmt"

	"github.com/shibukawa/letlang/ast"
	"github.com/shibukawa/letlang/tokenizer"
)

// Parse parses tokens into top-level nodes. No partial result is returned
// on error.
func Parse(tokens []tokenizer.Token, opts ...Option) ([]ast.Node, error) {
	options := DefaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	p := &parser{
		tokens:  tokens,
		options: options,
	}

	if err := p.parse(); err != nil {
		return nil, err
	}

	return p.tree, nil
}

type parser struct {
	tokens  []tokenizer.Token
	pos     int
	tree    []ast.Node
	options Options
}

func (p *parser) advance() {
	p.pos++
}

func (p *parser) current() (tokenizer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return tokenizer.Token{}, false
	}

	return p.tokens[p.pos], true
}

// endPosition is reported for errors at end of input
func (p *parser) endPosition() tokenizer.Position {
	if len(p.tokens) == 0 {
		return tokenizer.Position{}
	}

	return p.tokens[len(p.tokens)-1].Position
}

func (p *parser) parse() error {
	for p.pos < len(p.tokens) {
		token := p.tokens[p.pos]

		switch {
		case token.Kind == tokenizer.Keyword && token.Value == "let":
			if err := p.parseLet(); err != nil {
				return err
			}
		case token.Kind == tokenizer.Keyword && token.Value == "if":
			// reserved: condition and then block are not parsed yet
		case p.options.StrictTopLevel:
			return &ParseError{
				Err:      ErrUnexpectedToken,
				Expected: "statement",
				Found:    describe(token),
				Position: token.Position,
			}
		}

		p.advance()
	}

	return nil
}

// expectKind checks the current token kind and returns it
func (p *parser) expectKind(kind tokenizer.Kind) (tokenizer.Token, error) {
	token, ok := p.current()
	if !ok {
		return token, &ParseError{Err: ErrUnexpectedToken, Expected: kind.String(), Found: endOfInput, Position: p.endPosition()}
	}

	if token.Kind != kind {
		return token, &ParseError{Err: ErrUnexpectedToken, Expected: kind.String(), Found: describe(token), Position: token.Position}
	}

	return token, nil
}

// expectSymbol checks the current token is the given symbol
func (p *parser) expectSymbol(value string) error {
	expected := fmt.Sprintf("%s %q", tokenizer.Symbol, value)

	token, ok := p.current()
	if !ok {
		return &ParseError{Err: ErrUnexpectedToken, Expected: expected, Found: endOfInput, Position: p.endPosition()}
	}

	if token.Kind != tokenizer.Symbol || token.Value != value {
		return &ParseError{Err: ErrUnexpectedToken, Expected: expected, Found: describe(token), Position: token.Position}
	}

	return nil
}

// parseLet parses a let statement. On return the cursor rests on the
// terminating ";".
func (p *parser) parseLet() error {
	let := p.tokens[p.pos]

	p.advance()

	name, err := p.expectKind(tokenizer.Identifier)
	if err != nil {
		return err
	}

	p.advance()

	if err := p.expectSymbol("="); err != nil {
		return err
	}

	p.advance()

	var buffer []tokenizer.Token

	for {
		token, ok := p.current()
		if !ok {
			return &ParseError{
				Err:      ErrUnterminatedStatement,
				Expected: fmt.Sprintf("%s %q", tokenizer.Symbol, ";"),
				Found:    endOfInput,
				Position: let.Position,
			}
		}

		if token.Kind == tokenizer.Symbol && token.Value == ";" {
			break
		}

		buffer = append(buffer, token)
		p.advance()
	}

	terminator := p.tokens[p.pos]

	value, err := buildMathOp(buffer, terminator)
	if err != nil {
		return err
	}

	p.tree = append(p.tree, &ast.Var{Name: name.Value, Value: value, Pos: let.Position})

	return nil
}

// buildMathOp partitions the expression tokens into members and operators
// and checks they alternate.
func buildMathOp(buffer []tokenizer.Token, terminator tokenizer.Token) (*ast.MathOp, error) {
	mathOp := &ast.MathOp{Pos: terminator.Position}
	if len(buffer) > 0 {
		mathOp.Pos = buffer[0].Position
	}

	for _, token := range buffer {
		switch token.Kind {
		case tokenizer.Symbol:
			op, ok := ast.OperatorFromSymbol(token.Value)
			if !ok {
				return nil, &ParseError{Err: ErrUnexpectedOperator, Found: describe(token), Position: token.Position}
			}

			mathOp.Operators = append(mathOp.Operators, op)
		case tokenizer.Number:
			mathOp.Members = append(mathOp.Members, ast.Number(token.Number))
		case tokenizer.String:
			mathOp.Members = append(mathOp.Members, ast.String(token.Value))
		default:
			return nil, &ParseError{Err: ErrUnexpectedToken, Expected: "number or string", Found: describe(token), Position: token.Position}
		}
	}

	if consumed := matchExpression(buffer); consumed != len(buffer) || len(buffer) == 0 {
		return nil, malformed(buffer, consumed, terminator)
	}

	if err := mathOp.Validate(); err != nil {
		return nil, &ParseError{Err: ErrMalformedExpression, Found: err.Error(), Position: mathOp.Pos}
	}

	return mathOp, nil
}

// malformed reports the first token that breaks operand/operator alternation.
// Even indexes must be operands, odd indexes operators.
func malformed(buffer []tokenizer.Token, consumed int, terminator tokenizer.Token) *ParseError {
	i := consumed
	if i%2 == 1 && buffer[i].Kind == tokenizer.Symbol {
		// the operator is in place, its right operand is missing
		i++
	}

	expected := "number or string"
	if i%2 == 1 {
		expected = "operator"
	}

	offender := terminator
	if i < len(buffer) {
		offender = buffer[i]
	}

	return &ParseError{
		Err:      ErrMalformedExpression,
		Expected: expected,
		Found:    describe(offender),
		Position: offender.Position,
	}
}
