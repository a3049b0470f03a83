package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) buildCommand() *cobra.Command {
	var (
		src       sourceFlags
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "build [recipe]",
		Short: "Print the adjacency dump of a graph",
		Long:  `Build a graph from a recipe file and/or --gen steps and print one line per node: its label followed by its neighbors in insertion order.`,
		Example: `  topograph build --gen barbell:2,2
  topograph build graph.toml --delimiter ,`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := src.graph(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g.AdjacencyList(delimiter))
			return err
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", " ", "field delimiter")

	return cmd
}
