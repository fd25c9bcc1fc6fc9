package formatter

import (
	"fmt"
	"strings"

	"github.com/shibukawa/letlang/markdownparser"
)

// MarkdownFormatter formats letlang code blocks within Markdown files
type MarkdownFormatter struct {
	languages []string
}

// NewMarkdownFormatter creates a new Markdown formatter. With no languages
// markdownparser.DefaultLanguages are used.
func NewMarkdownFormatter(languages ...string) *MarkdownFormatter {
	return &MarkdownFormatter{languages: languages}
}

// Format formats the letlang code blocks of a Markdown document and leaves
// everything else untouched. Indented blocks are left as they are
// because their source is not a contiguous byte range.
func (f *MarkdownFormatter) Format(markdown, label string) (string, error) {
	content := []byte(markdown)
	blocks := markdownparser.ExtractBlocks(content, f.languages...)

	var result strings.Builder

	cursor := 0

	for _, block := range blocks {
		if !block.Contiguous {
			continue
		}

		formatted, err := Format(block.Source, fmt.Sprintf("%s:%d", label, block.StartLine))
		if err != nil {
			return "", err
		}

		result.Write(content[cursor:block.Start])
		result.WriteString(formatted)

		cursor = block.Stop
	}

	result.Write(content[cursor:])

	return result.String(), nil
}
