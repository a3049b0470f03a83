package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topograph/core"
	"github.com/katalvlaran/topograph/recipe"
)

// errNoSource is returned when neither a recipe nor --gen was given.
var errNoSource = errors.New("no graph source: pass a recipe file or at least one --gen")

// sourceFlags are shared by every command that builds a graph.
type sourceFlags struct {
	gens     []string
	directed bool
	idScheme string
	seed     int64
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.gens, "gen", "g", nil, "generator step as name:arg,arg (repeatable)")
	cmd.Flags().BoolVar(&s.directed, "directed", false, "build a directed graph")
	cmd.Flags().StringVar(&s.idScheme, "ids", "", "label scheme: decimal, alphanumeric, excel, prefix:<symbol>")
	cmd.Flags().Int64Var(&s.seed, "seed", 0, "seed for random generators and layouts")
}

// recipe merges the optional recipe file with command-line steps. Flags that
// were set explicitly override the file.
func (s *sourceFlags) recipe(cmd *cobra.Command, args []string) (*recipe.Recipe, error) {
	r := &recipe.Recipe{}
	if len(args) > 0 {
		loaded, err := recipe.Load(args[0])
		if err != nil {
			return nil, err
		}
		r = loaded
	}
	if len(args) == 0 && len(s.gens) == 0 {
		return nil, errNoSource
	}

	for _, spec := range s.gens {
		step, err := parseGenSpec(spec)
		if err != nil {
			return nil, err
		}
		r.Steps = append(r.Steps, step)
	}

	flags := cmd.Flags()
	if flags.Changed("directed") {
		r.Directed = s.directed
	}
	if flags.Changed("ids") {
		r.IDScheme = s.idScheme
	}
	if flags.Changed("seed") {
		seed := s.seed
		r.Seed = &seed
	}

	return r, r.Validate()
}

// graph resolves the source and builds the store.
func (s *sourceFlags) graph(cmd *cobra.Command, args []string) (*core.Graph, *recipe.Recipe, error) {
	r, err := s.recipe(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	g, err := r.Build(logger)
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Built %d nodes, %d edges", g.NumberOfNodes(), g.NumberOfEdges()))

	return g, r, nil
}

// parseGenSpec splits "name:1,2.5" into a recipe step. A bare name has no args.
func parseGenSpec(spec string) (recipe.Step, error) {
	name, rawArgs, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return recipe.Step{}, fmt.Errorf("--gen %q: missing generator name", spec)
	}

	step := recipe.Step{Generator: name}
	if strings.TrimSpace(rawArgs) == "" {
		return step, nil
	}
	for _, field := range strings.Split(rawArgs, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return recipe.Step{}, fmt.Errorf("--gen %q: argument %q: %w", spec, field, err)
		}
		step.Args = append(step.Args, v)
	}

	return step, nil
}
