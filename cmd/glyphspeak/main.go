package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/glyphspeak/glyphspeak"
	"github.com/glyphspeak/glyphspeak/layers"
	"github.com/glyphspeak/glyphspeak/parser"
)

const version = "0.2.0"

// Context represents the global context for commands
type Context struct {
	Rosetta string
	Verbose bool
	Quiet   bool
}

var cli struct {
	Rosetta string `help:"Path to the rosetta table YAML (GLYPHSPEAK_ROSETTA overrides)" short:"r" default:"testdata/rosetta.yaml"`
	Verbose bool   `help:"Enable debug logging" short:"v"`
	Quiet   bool   `help:"Only print errors" short:"q"`

	Parse   ParseCmd   `cmd:"" help:"Parse a glyph expression and print its AST, token list, and layer output"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// ParseCmd represents the parse command
type ParseCmd struct {
	Expression string `arg:"" help:"Glyph expression to parse"`
	NoLayers   bool   `help:"Skip the layer compositor"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	path := glyphspeak.DefaultRosettaPath(ctx.Rosetta)

	table, err := glyphspeak.LoadRosetta(path)
	if err != nil {
		return fmt.Errorf("failed to load rosetta table: %w", err)
	}

	root, err := parser.ParseExpression(cmd.Expression, table)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		color.Cyan("Expression: %s", cmd.Expression)
		color.Cyan("AST (depth %d):", root.Depth())
	}

	fmt.Print(parser.Render(root))

	tokens := root.Flatten()

	if !ctx.Quiet {
		color.Cyan("Token list (%d tokens, pre-order):", len(tokens))

		for _, token := range tokens {
			fmt.Printf("  %s @%d %s\n", token, token.Position, token.SemanticValue)
		}
	}

	for _, issue := range parser.Validate(root) {
		color.Yellow("Validation: %s", issue)
	}

	if cmd.NoLayers {
		return nil
	}

	compositor := layers.NewCompositor()

	message, err := compositor.Compose(tokens)
	if err != nil {
		return fmt.Errorf("layer composition failed: %w", err)
	}

	if !ctx.Quiet {
		color.Cyan("Multi-modal message %s (%s):", message.ID, message.Strategy)

		for name, output := range message.Layers {
			fmt.Printf("  %s: %v\n", name, output)
		}
	}

	return nil
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Printf("glyphspeak version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("glyphspeak"),
		kong.Description("Precedence parser and multi-modal composer for symbolic glyph expressions"),
		kong.UsageOnError(),
	)

	switch {
	case cli.Verbose:
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case cli.Quiet:
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	err := ctx.Run(&Context{
		Rosetta: cli.Rosetta,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
	})
	ctx.FatalIfErrorf(err)
}
