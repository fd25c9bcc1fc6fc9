package markdownparser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultLanguages are the fenced code block info strings treated as letlang source
var DefaultLanguages = []string{"letlang", "let"}

// Block is a letlang fenced code block found in a Markdown document
type Block struct {
	Language string
	Source   string
	// StartLine is the zero-based document line of the first source line
	StartLine int
	// Start and Stop are the byte range of the source in the document
	Start int
	Stop  int
	// Contiguous is true when Source is exactly document[Start:Stop], which
	// is not the case for indented fences (e.g. inside list items)
	Contiguous bool
}

// ExtractBlocks returns the fenced code blocks whose language matches one of
// languages (DefaultLanguages when none are given), in document order.
// Empty blocks are skipped.
func ExtractBlocks(content []byte, languages ...string) []Block {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	doc := md.Parser().Parse(text.NewReader(content))

	var blocks []Block

	index := newLineIndex(content)

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		codeBlock, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		language := strings.ToLower(strings.TrimSpace(string(codeBlock.Language(content))))
		if !matchLanguage(language, languages) {
			return ast.WalkSkipChildren, nil
		}

		if block, ok := extractBlock(codeBlock, content, language, index); ok {
			blocks = append(blocks, block)
		}

		return ast.WalkSkipChildren, nil
	})

	return blocks
}

func matchLanguage(language string, languages []string) bool {
	for _, l := range languages {
		if strings.EqualFold(language, l) {
			return true
		}
	}

	return false
}

func extractBlock(codeBlock *ast.FencedCodeBlock, content []byte, language string, index *lineIndex) (Block, bool) {
	lines := codeBlock.Lines()
	if lines == nil || lines.Len() == 0 {
		return Block{}, false
	}

	var source strings.Builder

	contiguous := true

	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		source.Write(line.Value(content))

		if line.Padding > 0 || (i > 0 && line.Start != lines.At(i-1).Stop) {
			contiguous = false
		}
	}

	first := lines.At(0)
	last := lines.At(lines.Len() - 1)

	return Block{
		Language:   language,
		Source:     source.String(),
		StartLine:  index.lineOf(first.Start),
		Start:      first.Start,
		Stop:       last.Stop,
		Contiguous: contiguous,
	}, true
}
