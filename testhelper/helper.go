package testhelper

import (
	"strings"
	"testing"

	"github.com/shibukawa/letlang/tokenizer"
)

// TrimIndent drops the first line of src and removes the indentation of the
// second line from every line, so fixtures can be written as indented raw
// strings.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	lines = lines[1:]
	indent := lines[0][:len(lines[0])-len(strings.TrimLeft(lines[0], " \t"))]

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(lines, "\n")
}

// Tokenize tokenizes src and fails the test on error
func Tokenize(t *testing.T, src string) []tokenizer.Token {
	t.Helper()

	tokens, err := tokenizer.Tokenize(src, "test.let")
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}

	return tokens
}
