package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/letlang/formatter"
)

// FormatCmd represents the format command
type FormatCmd struct {
	Input string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Write bool   `short:"w" help:"Write result to input file instead of stdout"`
	Check bool   `short:"c" help:"Check if files are formatted (exit 1 if not)"`
	Diff  bool   `short:"d" help:"Show diff instead of rewriting files"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	languages := config.Markdown.Languages

	if cmd.Input == "" {
		input, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		return cmd.formatContent(ctx, string(input), stdinLabel, languages, ctx.Stdout)
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		return cmd.formatDirectory(ctx, cmd.Input, languages)
	}

	if !isSourceFile(cmd.Input) {
		ctx.warnf("Skipping non-letlang file: %s", cmd.Input)
		return nil
	}

	return cmd.formatFile(ctx, cmd.Input, languages)
}

// formatContent formats one document and reports or writes the result
func (cmd *FormatCmd) formatContent(ctx *Context, input, filename string, languages []string, writer io.Writer) error {
	var (
		formatted string
		err       error
	)

	if isMarkdownFile(filename) {
		formatted, err = formatter.NewMarkdownFormatter(languages...).Format(input, filename)
	} else {
		formatted, err = formatter.Format(input, filename)
	}

	if err != nil {
		return err
	}

	if cmd.Check {
		if strings.TrimSpace(input) != strings.TrimSpace(formatted) {
			ctx.warnf("%s is not formatted", filename)
			return ErrFileNotFormatted
		}

		return nil
	}

	if cmd.Diff {
		return showDiff(ctx.Stdout, input, formatted, filename)
	}

	_, err = io.WriteString(writer, formatted)

	return err
}

// formatFile formats a single file to stdout, or in place with --write
func (cmd *FormatCmd) formatFile(ctx *Context, filename string, languages []string) error {
	input, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !cmd.Write || cmd.Check || cmd.Diff {
		return cmd.formatContent(ctx, string(input), filename, languages, ctx.Stdout)
	}

	var sb strings.Builder

	err = cmd.formatContent(ctx, string(input), filename, languages, &sb)
	if err != nil {
		return err
	}

	if sb.String() == string(input) {
		ctx.verbosef("Already formatted: %s", filename)
		return nil
	}

	err = replaceFile(filename, sb.String())
	if err != nil {
		return err
	}

	ctx.successf("Formatted: %s", filename)

	return nil
}

// formatDirectory formats all letlang files in a directory recursively
func (cmd *FormatCmd) formatDirectory(ctx *Context, dirPath string, languages []string) error {
	var hasErrors, unformatted bool

	err := filepath.WalkDir(dirPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !isSourceFile(path) {
			return nil
		}

		err = cmd.formatFile(ctx, path, languages)
		switch {
		case errors.Is(err, ErrFileNotFormatted):
			unformatted = true
		case err != nil:
			ctx.warnf("Error formatting %s: %v", path, err)

			hasErrors = true
		}

		// continue with the remaining files
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	if hasErrors {
		return ErrFormattingErrors
	}

	if unformatted {
		return ErrFileNotFormatted
	}

	return nil
}

// showDiff shows the difference between original and formatted content
func showDiff(w io.Writer, original, formatted, filename string) error {
	if strings.TrimSpace(original) == strings.TrimSpace(formatted) {
		return nil
	}

	fmt.Fprintf(w, "--- %s (original)\n", filename)
	fmt.Fprintf(w, "+++ %s (formatted)\n", filename)

	// line-by-line, no alignment
	originalLines := strings.Split(original, "\n")
	formattedLines := strings.Split(formatted, "\n")

	for i := range max(len(originalLines), len(formattedLines)) {
		var origLine, formLine string

		if i < len(originalLines) {
			origLine = originalLines[i]
		}

		if i < len(formattedLines) {
			formLine = formattedLines[i]
		}

		if origLine == formLine {
			continue
		}

		if origLine != "" {
			fmt.Fprintf(w, "-%s\n", origLine)
		}

		if formLine != "" {
			fmt.Fprintf(w, "+%s\n", formLine)
		}
	}

	return nil
}

// Help returns help text for the format command
func (cmd *FormatCmd) Help() string {
	return `Format letlang files and Markdown files with letlang code blocks.

Tokens are separated by a single space and every ";" ends a line.
Comments are removed. For Markdown files only the configured code blocks
(markdown.languages) are rewritten.

Examples:
  # Format a file and print to stdout
  letlang format main.let

  # Format files in place
  letlang format -w ./src/

  # Check if files are formatted
  letlang format -c ./src/

  # Format from stdin
  cat main.let | letlang format`
}
