package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/topograph/builder"
)

func (c *CLI) generatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List available generators and their parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			gens := builder.Generators()
			fields := make([]field, len(gens))
			for i, gen := range gens {
				fields[i] = field{gen.Usage(), gen.Summary}
			}
			printFields(cmd.OutOrStdout(), "Generators", fields)
		},
	}
}
