package formatter

import (
	"fmt"
	"strings"

	"github.com/shibukawa/letlang/tokenizer"
)

// Format normalizes whitespace: tokens are separated by one space and every
// ";" statement terminator ends a line. Comments are dropped because the
// tokenizer discards them.
func Format(src, label string) (string, error) {
	tokens, err := tokenizer.Tokenize(src, label)
	if err != nil {
		return "", fmt.Errorf("failed to tokenize %s: %w", label, err)
	}

	return FormatTokens(tokens), nil
}

// FormatTokens renders tokens in normalized form. Tokenizing the result
// yields the same kinds and values again.
func FormatTokens(tokens []tokenizer.Token) string {
	var sb strings.Builder

	lineStart := true
	prevSymbol := false

	for _, token := range tokens {
		terminator := token.Kind == tokenizer.Symbol && token.Value == ";"

		// a space is kept after symbols so adjacent symbol tokens never merge
		if !lineStart && (!terminator || prevSymbol) {
			sb.WriteByte(' ')
		}

		sb.WriteString(token.Text)

		if terminator {
			sb.WriteByte('\n')
		}

		lineStart = terminator
		prevSymbol = token.Kind == tokenizer.Symbol
	}

	if !lineStart {
		sb.WriteByte('\n')
	}

	return sb.String()
}
