package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topograph/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		src    sourceFlags
		lay    layoutFlags
		output string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "render [recipe]",
		Short: "Write a graph as DOT or SVG",
		Long:  `Render a graph through Graphviz. A .dot output (or stdout) receives DOT text; a .svg output is rendered with the embedded Graphviz. With --layout, node positions are pinned from the chosen layout and the SVG is laid out by neato, which keeps them.`,
		Example: `  topograph render --gen cycle:5 -o g.dot
  topograph render --gen circulant:8,1,3 --layout circular -o g.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, r, err := src.graph(cmd, args)
			if err != nil {
				return err
			}

			opts := render.Options{Name: name}
			if lay.kind != "" || r.Layout != nil {
				res, err := lay.run(cmd, g, r)
				if err != nil {
					return err
				}
				opts = render.FromResult(res)
				opts.Name = name
			}
			dot := render.ToDOT(g, opts)

			switch strings.ToLower(filepath.Ext(output)) {
			case "":
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			case ".dot", ".gv":
				if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
					return err
				}
			case ".svg":
				prog := newProgress(loggerFromContext(cmd.Context()))
				svg, err := render.RenderSVG(cmd.Context(), dot, opts.Engine())
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
				if err := os.WriteFile(output, svg, 0o644); err != nil {
					return err
				}
			default:
				return fmt.Errorf("output %q: want .dot, .gv or .svg", output)
			}

			printWritten(cmd.OutOrStdout(), "render", output)
			return nil
		},
	}

	src.register(cmd)
	lay.register(cmd, "layout")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .gv, .svg); stdout DOT when empty")
	cmd.Flags().StringVar(&name, "name", "", "DOT graph name")

	return cmd
}
