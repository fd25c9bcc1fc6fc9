package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// version is overwritten at build time with -ldflags "-X main.version=..."
var version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Format  string
	Strict  bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Config       string     `help:"Configuration file path" default:"letlang.yaml"`
	Verbose      bool       `help:"Enable verbose output" short:"v"`
	Quiet        bool       `help:"Suppress output" short:"q"`
	OutputFormat string     `help:"Output format (text, json, yaml); overrides output.format" name:"format" short:"f"`
	Strict       bool       `help:"Reject tokens that cannot start a statement instead of skipping them"`
	Tokens       TokensCmd  `cmd:"" help:"Print the tokens of letlang sources"`
	Parse        ParseCmd   `cmd:"" help:"Print the syntax tree of letlang sources"`
	Format       FormatCmd  `cmd:"" help:"Format letlang files"`
	Version      VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "letlang %s\n", version)
	return err
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("letlang"),
		kong.Description("Tokenizer, parser and formatter for letlang sources"),
		kong.UsageOnError(),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Format:  CLI.OutputFormat,
		Strict:  CLI.Strict,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
