package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topograph/core"
	"github.com/katalvlaran/topograph/layout"
	"github.com/katalvlaran/topograph/recipe"
)

// layoutFlags override the recipe's layout section.
type layoutFlags struct {
	kind       string
	width      float64
	height     float64
	iterations int
}

func (l *layoutFlags) register(cmd *cobra.Command, kindFlag string) {
	cmd.Flags().StringVar(&l.kind, kindFlag, "", "layout: arc, circular, spiral, random, force")
	cmd.Flags().Float64Var(&l.width, "width", 0, "frame width (default 640)")
	cmd.Flags().Float64Var(&l.height, "height", 0, "frame height (default 480)")
	cmd.Flags().IntVar(&l.iterations, "iterations", 0, "force-directed iterations")
}

// apply folds explicit flags into the recipe's layout section.
func (l *layoutFlags) apply(r *recipe.Recipe) {
	if l.kind == "" && l.width == 0 && l.height == 0 && l.iterations == 0 {
		return
	}
	if r.Layout == nil {
		r.Layout = &recipe.LayoutSpec{Kind: string(layout.KindCircular)}
	}
	if l.kind != "" {
		r.Layout.Kind = l.kind
	}
	if l.width > 0 {
		r.Layout.Width = l.width
	}
	if l.height > 0 {
		r.Layout.Height = l.height
	}
	if l.iterations > 0 {
		r.Layout.Iterations = l.iterations
	}
}

// run computes the layout described by r over g.
func (l *layoutFlags) run(cmd *cobra.Command, g *core.Graph, r *recipe.Recipe) (*layout.Result, error) {
	l.apply(r)
	lay, frame, err := r.LayoutPlan()
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	res, err := layout.Run(g, lay, frame)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Computed %s layout on %gx%g", res.Kind, frame.Width, frame.Height))

	return res, nil
}

func (c *CLI) layoutCommand() *cobra.Command {
	var (
		src    sourceFlags
		lay    layoutFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [recipe]",
		Short: "Compute 2D node positions",
		Long:  `Compute node coordinates with one of the layout algorithms and export them, with labels and edges, as JSON or YAML.`,
		Example: `  topograph layout --gen wheel:6 --kind circular
  topograph layout --gen lollipop:4,3 --kind force --seed 7 -o lollipop.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, r, err := src.graph(cmd, args)
			if err != nil {
				return err
			}
			res, err := lay.run(cmd, g, r)
			if err != nil {
				return err
			}

			if output != "" {
				if err := res.WriteFile(output); err != nil {
					return err
				}
				printWritten(cmd.OutOrStdout(), string(res.Kind)+" layout", output)
				return nil
			}
			data, err := res.Encode(format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	src.register(cmd)
	lay.register(cmd, "kind")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "stdout format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file; format follows the extension")

	return cmd
}
