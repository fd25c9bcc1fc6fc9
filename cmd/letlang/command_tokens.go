package main

import (
	"fmt"
	"math"

	"github.com/shibukawa/letlang/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	Files []string `arg:"" optional:"" help:"Source files (.let or .md, default: stdin)"`
}

type tokenRecord struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Value  string   `json:"value" yaml:"value"`
	Number *float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Line   int      `json:"line" yaml:"line"`
	Column int      `json:"column" yaml:"column"`
}

type tokensOutput struct {
	Label  string        `json:"label" yaml:"label"`
	Tokens []tokenRecord `json:"tokens" yaml:"tokens"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	sources, err := ctx.readSources(cmd.Files, config.Markdown.Languages)
	if err != nil {
		return err
	}

	format := config.Output.Format
	outputs := make([]tokensOutput, 0, len(sources))

	for _, src := range sources {
		ctx.verbosef("Tokenizing %s", src.Label)

		tokens, err := tokenizer.Tokenize(src.Text, src.Label)
		if err != nil {
			return err
		}

		ctx.verbosef("Found %d tokens in %s", len(tokens), src.Label)

		if format == "text" {
			err = writeTokenTable(ctx, src.Label, tokens)
			if err != nil {
				return err
			}

			continue
		}

		outputs = append(outputs, newTokensOutput(src.Label, tokens))
	}

	if format == "text" {
		return nil
	}

	return writeStructured(ctx.Stdout, format, outputs)
}

func writeTokenTable(ctx *Context, label string, tokens []tokenizer.Token) error {
	_, err := fmt.Fprintf(ctx.Stdout, "%s:\n", label)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tokens))
	for _, token := range tokens {
		rows = append(rows, []string{token.Position.String(), token.Kind.String(), token.Text})
	}

	return writeTable(ctx.Stdout, []string{"position", "kind", "value"}, rows)
}

func newTokensOutput(label string, tokens []tokenizer.Token) tokensOutput {
	records := make([]tokenRecord, 0, len(tokens))

	for _, token := range tokens {
		record := tokenRecord{
			Kind:   token.Kind.String(),
			Value:  token.Value,
			Line:   token.Position.Line,
			Column: token.Position.Column,
		}

		// out of range literals keep only their text in Value
		if token.Kind == tokenizer.Number && !math.IsInf(token.Number, 0) {
			number := token.Number
			record.Number = &number
		}

		records = append(records, record)
	}

	return tokensOutput{Label: label, Tokens: records}
}
