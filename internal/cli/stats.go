package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topograph/core"
)

func (c *CLI) statsCommand() *cobra.Command {
	var (
		src    sourceFlags
		node   string
		common string
	)

	cmd := &cobra.Command{
		Use:   "stats [recipe]",
		Short: "Report counts, average degree and density",
		Example: `  topograph stats --gen turan:6,3
  topograph stats --gen star:4 --node 0
  topograph stats --gen cycle:5 --common 0,2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := src.graph(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printFields(out, "Graph", graphFields(g))

			if node != "" {
				fields, err := nodeFields(g, node)
				if err != nil {
					return err
				}
				printFields(out, "Node "+node, fields)
			}
			if common != "" {
				a, b, ok := strings.Cut(common, ",")
				if !ok {
					return fmt.Errorf("--common %q: want label,label", common)
				}
				shared, err := g.CommonNeighbors(a, b)
				if err != nil {
					return err
				}
				printFields(out, "Common "+a+" "+b, []field{{"neighbors", joinLabels(shared)}})
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&node, "node", "", "also report degree and (non-)neighbors of this label")
	cmd.Flags().StringVar(&common, "common", "", "also report common neighbors of label,label")

	return cmd
}

func graphFields(g *core.Graph) []field {
	fields := []field{
		{"nodes", strconv.Itoa(g.NumberOfNodes())},
		{"edges", strconv.Itoa(g.NumberOfEdges())},
		{"directed", strconv.FormatBool(g.Directed())},
	}
	fields = append(fields, field{"average degree", metric(g.AverageDegree())})
	fields = append(fields, field{"density", metric(g.Density())})

	return fields
}

func nodeFields(g *core.Graph, label string) ([]field, error) {
	degree, err := g.Degree(label)
	if err != nil {
		return nil, err
	}
	nbs, err := g.Neighbors(label)
	if err != nil {
		return nil, err
	}
	non, err := g.NonNeighbors(label)
	if err != nil {
		return nil, err
	}

	return []field{
		{"degree", strconv.Itoa(degree)},
		{"neighbors", joinLabels(nbs)},
		{"non-neighbors", joinLabels(non)},
	}, nil
}

// metric formats a query result, rendering the undefined cases as "n/a".
func metric(v float64, err error) string {
	if errors.Is(err, core.ErrEmptyGraph) || errors.Is(err, core.ErrTooFewNodes) {
		return "n/a"
	}
	if err != nil {
		return err.Error()
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

func joinLabels(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}

	return strings.Join(labels, " ")
}
