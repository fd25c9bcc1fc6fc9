package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/letlang/markdownparser"
)

const stdinLabel = "<stdin>"

// source is one piece of letlang text and the label used in its messages
type source struct {
	Label string
	Text  string
}

// readSources reads the given files, or stdin when there are none. Each
// matching code block of a Markdown file becomes its own source labeled
// path:LINE.
func (ctx *Context) readSources(paths []string, languages []string) ([]source, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		return []source{{Label: stdinLabel, Text: string(data)}}, nil
	}

	var sources []source

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if !isMarkdownFile(path) {
			sources = append(sources, source{Label: path, Text: string(data)})
			continue
		}

		blocks := markdownparser.ExtractBlocks(data, languages...)
		if len(blocks) == 0 {
			ctx.warnf("No letlang code blocks found in %s", path)
		}

		for _, block := range blocks {
			sources = append(sources, source{
				Label: fmt.Sprintf("%s:%d", path, block.StartLine),
				Text:  block.Source,
			})
		}
	}

	return sources, nil
}

// isMarkdownFile checks if a file is a Markdown file
func isMarkdownFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".md")
}

// isSourceFile checks if a file holds letlang source directly or in Markdown
func isSourceFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".let" || ext == ".md"
}
