package formatter

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/letlang/tokenizer"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already formatted",
			input:    "let x = 10;\n",
			expected: "let x = 10;\n",
		},
		{
			name:     "collapses whitespace",
			input:    "let   x=\n\t1+2 ;let y = \"a  b\";",
			expected: "let x = 1 + 2;\nlet y = \"a  b\";\n",
		},
		{
			name:     "drops comments",
			input:    "// header\nlet x = 1; // trailing\n",
			expected: "let x = 1;\n",
		},
		{
			name:     "keeps space between symbol and terminator",
			input:    "let x = 1 + ;",
			expected: "let x = 1 + ;\n",
		},
		{
			name:     "unterminated tail gets a newline",
			input:    "if (x < 1) {}",
			expected: "if ( x < 1 ) {}\n",
		},
		{
			name:     "empty",
			input:    "  // nothing\n",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			formatted, err := Format(test.input, "test")
			assert.NoError(t, err)
			assert.Equal(t, test.expected, formatted)
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"let x = 1 + 2 - 3;",
		"let a=1;let b=\"s\"*2;;",
		"x <= 1 +; - ; [ ]",
		"let n = 1.2.3 / 4.;",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once, err := Format(input, "test")
			assert.NoError(t, err)

			twice, err := Format(once, "test")
			assert.NoError(t, err)
			assert.Equal(t, once, twice)

			original, err := tokenizer.Tokenize(input, "test")
			assert.NoError(t, err)

			reformatted, err := tokenizer.Tokenize(once, "test")
			assert.NoError(t, err)
			assert.Equal(t, len(original), len(reformatted))

			for i := range original {
				assert.Equal(t, original[i].Kind, reformatted[i].Kind)
				assert.Equal(t, original[i].Value, reformatted[i].Value)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	_, err := Format("let x = @;", "bad.let")
	assert.IsError(t, err, tokenizer.ErrUnexpectedCharacter)
	assert.Contains(t, err.Error(), "bad.let:0:8")
}

func TestMarkdownFormatter(t *testing.T) {
	input := "# Doc\n\n```letlang\nlet   x=1;\n```\n\n```go\nx  :=  1\n```\n"
	expected := "# Doc\n\n```letlang\nlet x = 1;\n```\n\n```go\nx  :=  1\n```\n"

	formatted, err := NewMarkdownFormatter().Format(input, "doc.md")
	assert.NoError(t, err)
	assert.Equal(t, expected, formatted)

	_, err = NewMarkdownFormatter().Format("```let\nlet x = $;\n```\n", "doc.md")
	assert.IsError(t, err, tokenizer.ErrUnexpectedCharacter)
	assert.Contains(t, err.Error(), "doc.md:1")
}
