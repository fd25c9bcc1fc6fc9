package main

import (
	"fmt"

	"github.com/shibukawa/letlang"
	"github.com/shibukawa/letlang/ast"
	"github.com/shibukawa/letlang/parser"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Files []string `arg:"" optional:"" help:"Source files (.let or .md, default: stdin)"`
}

type parseOutput struct {
	Label string           `json:"label" yaml:"label"`
	Nodes []map[string]any `json:"nodes" yaml:"nodes"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	sources, err := ctx.readSources(cmd.Files, config.Markdown.Languages)
	if err != nil {
		return err
	}

	format := config.Output.Format
	options := parser.WithOptions(config.Parser.Options())
	outputs := make([]parseOutput, 0, len(sources))

	for _, src := range sources {
		ctx.verbosef("Parsing %s", src.Label)

		_, nodes, err := letlang.Compile(src.Text, src.Label, options)
		if err != nil {
			return err
		}

		ctx.verbosef("Parsed %d statements from %s", len(nodes), src.Label)

		if format == "text" {
			// the label line is a comment, so the output is still letlang source
			_, err = fmt.Fprintf(ctx.Stdout, "// %s\n", src.Label)
			if err != nil {
				return err
			}

			err = ast.Print(ctx.Stdout, nodes)
			if err != nil {
				return err
			}

			continue
		}

		outputs = append(outputs, parseOutput{Label: src.Label, Nodes: ast.Encode(nodes)})
	}

	if format == "text" {
		return nil
	}

	return writeStructured(ctx.Stdout, format, outputs)
}
