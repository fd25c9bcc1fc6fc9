package markdownparser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

const document = "# Title\n" +
	"\n" +
	"Some text.\n" +
	"\n" +
	"```letlang\n" +
	"let x = 1;\n" +
	"let y = 2;\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"fmt.Println()\n" +
	"```\n" +
	"\n" +
	"```let\n" +
	"let z = 3;\n" +
	"```\n"

func TestExtractBlocks(t *testing.T) {
	content := []byte(document)
	blocks := ExtractBlocks(content)

	assert.Equal(t, 2, len(blocks))

	assert.Equal(t, "letlang", blocks[0].Language)
	assert.Equal(t, "let x = 1;\nlet y = 2;\n", blocks[0].Source)
	assert.Equal(t, 5, blocks[0].StartLine)
	assert.True(t, blocks[0].Contiguous)
	assert.Equal(t, blocks[0].Source, string(content[blocks[0].Start:blocks[0].Stop]))

	assert.Equal(t, "let", blocks[1].Language)
	assert.Equal(t, "let z = 3;\n", blocks[1].Source)
	assert.Equal(t, 14, blocks[1].StartLine)
}

func TestExtractBlocksLanguages(t *testing.T) {
	blocks := ExtractBlocks([]byte(document), "go")
	assert.Equal(t, 1, len(blocks))
	assert.Equal(t, "fmt.Println()\n", blocks[0].Source)

	blocks = ExtractBlocks([]byte("```LetLang\nlet a = 1;\n```\n"))
	assert.Equal(t, 1, len(blocks))
	assert.Equal(t, "letlang", blocks[0].Language)

	blocks = ExtractBlocks([]byte("```letlang\n```\n\nno code here\n"))
	assert.Equal(t, 0, len(blocks))
}

func TestExtractBlocksIndented(t *testing.T) {
	content := []byte("- item\n\n  ```letlang\n  let a = 1;\n  let b = 2;\n  ```\n")
	blocks := ExtractBlocks(content)

	assert.Equal(t, 1, len(blocks))
	assert.Equal(t, "let a = 1;\nlet b = 2;\n", blocks[0].Source)
	assert.Equal(t, 3, blocks[0].StartLine)
	assert.False(t, blocks[0].Contiguous)
}

func TestLineIndex(t *testing.T) {
	index := newLineIndex([]byte("ab\n\ncd\n"))

	assert.Equal(t, 0, index.lineOf(0))
	assert.Equal(t, 0, index.lineOf(2))
	assert.Equal(t, 1, index.lineOf(3))
	assert.Equal(t, 2, index.lineOf(4))
	assert.Equal(t, 2, index.lineOf(6))
	assert.Equal(t, 3, index.lineOf(7))
}
