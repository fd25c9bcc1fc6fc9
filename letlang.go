// Package letlang is the front end of a small interpreted language: a
// tokenizer that turns source text into positioned tokens and a parser that
// turns tokens into statement nodes.
package letlang

import (
	"errors"

	"github.com/shibukawa/letlang/ast"
	"github.com/shibukawa/letlang/parser"
	"github.com/shibukawa/letlang/tokenizer"
)

// Compile tokenizes and parses src. label names the source in error messages.
// Parse errors get the label attached so they can be shown to users as is.
func Compile(src, label string, opts ...parser.Option) ([]tokenizer.Token, []ast.Node, error) {
	tokens, err := tokenizer.Tokenize(src, label)
	if err != nil {
		return nil, nil, err
	}

	nodes, err := parser.Parse(tokens, opts...)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			perr.Label = label
		}

		return tokens, nil, err
	}

	return tokens, nodes, nil
}
