package parser

import (
	"slices"

	"github.com/shibukawa/letlang/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
)

var (
	// operand parses a number or string literal.
	operand = primitiveType("operand", tokenizer.Number, tokenizer.String)
	// operator parses a symbol. Symbols are mapped to operators before the shape check.
	operator = primitiveType("operator", tokenizer.Symbol)
	// expression is operand (operator operand)*
	expression = pc.Seq(
		operand,
		pc.ZeroOrMore("operator and operand", pc.Seq(operator, operand)),
	)
)

func primitiveType(typeName string, kinds ...tokenizer.Kind) pc.Parser[tokenizer.Token] {
	return func(pctx *pc.ParseContext[tokenizer.Token], tokens []pc.Token[tokenizer.Token]) (int, []pc.Token[tokenizer.Token], error) {
		if len(tokens) > 0 && slices.Contains(kinds, tokens[0].Val.Kind) {
			tokens[0].Type = typeName
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func toParserToken(tokens []tokenizer.Token) []pc.Token[tokenizer.Token] {
	results := make([]pc.Token[tokenizer.Token], len(tokens))

	for i, token := range tokens {
		results[i] = pc.Token[tokenizer.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Text,
		}
	}

	return results
}

// matchExpression returns how many leading tokens form a well-shaped
// expression. The whole run is valid when the count equals len(tokens).
func matchExpression(tokens []tokenizer.Token) int {
	pctx := pc.NewParseContext[tokenizer.Token]()

	consumed, _, err := expression(pctx, toParserToken(tokens))
	if err != nil {
		return 0
	}

	return consumed
}
