package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/letlang"
)

// loadConfig reads the configuration file and applies command-line overrides
func (ctx *Context) loadConfig() (*letlang.Config, error) {
	config, err := letlang.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if ctx.Format != "" {
		if !letlang.ValidFormats[ctx.Format] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, ctx.Format)
		}

		config.Output.Format = ctx.Format
	}

	if ctx.Strict {
		config.Parser.StrictTopLevel = true
	}

	if !config.Output.IsColorEnabled() {
		color.NoColor = true
	}

	ctx.verbosef("Configuration loaded from: %s", ctx.Config)

	return config, nil
}

// verbosef prints a progress line to stderr when --verbose is set
func (ctx *Context) verbosef(format string, args ...any) {
	if !ctx.Verbose || ctx.Quiet {
		return
	}

	color.New(color.FgBlue).Fprintf(ctx.Stderr, format+"\n", args...)
}

// warnf prints a warning to stderr unless --quiet is set
func (ctx *Context) warnf(format string, args ...any) {
	if ctx.Quiet {
		return
	}

	color.New(color.FgYellow).Fprintf(ctx.Stderr, format+"\n", args...)
}

// successf prints a completion line to stderr unless --quiet is set
func (ctx *Context) successf(format string, args ...any) {
	if ctx.Quiet {
		return
	}

	color.New(color.FgGreen).Fprintf(ctx.Stderr, format+"\n", args...)
}
