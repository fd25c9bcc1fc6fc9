package letlang

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/letlang/ast"
	"github.com/shibukawa/letlang/parser"
	"github.com/shibukawa/letlang/tokenizer"
)

func TestCompile(t *testing.T) {
	tokens, nodes, err := Compile("let x = 1 + 2 - 3;", "f")
	assert.NoError(t, err)
	assert.Equal(t, 9, len(tokens))
	assert.Equal(t, 1, len(nodes))

	v := nodes[0].(*ast.Var)
	assert.Equal(t, "x", v.Name)
	assert.Equal[ast.Expr](t, &ast.MathOp{
		Members:   []ast.Member{ast.Number(1), ast.Number(2), ast.Number(3)},
		Operators: []ast.MathOpKind{ast.Addition, ast.Subtraction},
		Pos:       tokenizer.Position{Offset: 8, Line: 0, Column: 8},
	}, v.Value)
}

func TestCompileErrors(t *testing.T) {
	_, _, err := Compile("let x = #;", "main.let")
	assert.IsError(t, err, ErrUnexpectedCharacter)
	assert.Equal(t, "unexpected character `#' at main.let:0:8", err.Error())

	tokens, nodes, err := Compile("let x = 1 + ;", "main.let")
	assert.IsError(t, err, ErrMalformedExpression)
	assert.Equal(t, 6, len(tokens))
	assert.Zero(t, nodes)

	var perr *parser.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "main.let", perr.Label)
	assert.Equal(t, `main.let:0:12: malformed expression: expected number or string, got symbol ";"`, err.Error())

	// "+;" is a single symbol, so the statement never ends
	_, _, err = Compile("let x = 1 +;", "main.let")
	assert.IsError(t, err, ErrUnterminatedStatement)

	_, _, err = Compile("junk", "main.let", parser.WithStrictTopLevel())
	assert.IsError(t, err, ErrUnexpectedToken)
}
