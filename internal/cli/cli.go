// Package cli implements the topograph command-line interface.
//
// Commands:
//   - build: print the adjacency dump of a generated graph
//   - stats: node/edge counts, average degree and density
//   - layout: compute node coordinates and export them as JSON or YAML
//   - render: write DOT or SVG through Graphviz
//   - generators: list the generator registry
//
// Every graph-consuming command accepts either a recipe file argument or one
// or more --gen name:args flags. All commands support --verbose (-v); the
// logger travels through the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in usage strings.
const appName = "topograph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Topograph builds, measures and draws classic graphs",
		Long:         `Topograph constructs graphs from a registry of classic generators or a recipe file, reports their statistics, and exports 2D layouts as JSON, YAML, DOT or SVG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generatorsCommand())

	return root
}

// Execute runs the command tree with args against ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
