// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// registry.go: name → factory table for text-driven construction.
//
// Recipe files and the CLI refer to generators by snake_case name and pass
// numeric arguments. Integer parameters must carry integral values; the last
// parameter of a variadic generator absorbs every remaining argument.

package builder

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Generator describes one registered factory.
type Generator struct {
	// Name is the lookup key, e.g. "barbell".
	Name string
	// Params lists parameter names in call order, e.g. ["m1","m2"].
	Params []string
	// Variadic marks that the last Param accepts zero or more values.
	Variadic bool
	// Summary is a one-line description for listings.
	Summary string

	build func(args []float64) (Constructor, error)
}

// Constructor validates arity and integrality, then returns the factory's Constructor.
// Parameter range checks still happen when the Constructor runs.
func (gen Generator) Constructor(args ...float64) (Constructor, error) {
	fixed := len(gen.Params)
	if gen.Variadic {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%s: want at least %d args, got %d: %w", gen.Name, fixed, len(args), ErrBadArguments)
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%s: want %d args, got %d: %w", gen.Name, fixed, len(args), ErrBadArguments)
	}

	return gen.build(args)
}

// Usage renders "name(p1, p2, ...)".
func (gen Generator) Usage() string {
	params := strings.Join(gen.Params, ", ")
	if gen.Variadic {
		params += "..."
	}

	return gen.Name + "(" + params + ")"
}

// registry is populated once at package init and never mutated afterwards.
var registry = map[string]Generator{}

func register(gen Generator) {
	registry[gen.Name] = gen
}

// Lookup returns the generator registered under name (case-insensitive).
func Lookup(name string) (Generator, error) {
	gen, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Generator{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownGenerator)
	}

	return gen, nil
}

// Generators lists every registered generator sorted by name.
func Generators() []Generator {
	out := make([]Generator, 0, len(registry))
	for _, gen := range registry {
		out = append(out, gen)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// ints converts args to integers, rejecting fractional values and magnitudes
// beyond 2^31-1.
func ints(name string, args []float64) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		if a != math.Trunc(a) || math.IsInf(a, 0) || math.IsNaN(a) {
			return nil, fmt.Errorf("%s: arg %d=%g is not an integer: %w", name, i, a, ErrBadArguments)
		}
		if math.Abs(a) > maxArgMagnitude {
			return nil, fmt.Errorf("%s: arg %d=%g is out of range: %w", name, i, a, ErrBadArguments)
		}
		out[i] = int(a)
	}

	return out, nil
}

// unary, binary adapt integer factories to the registry signature.
func unary(name string, f func(int) Constructor) func([]float64) (Constructor, error) {
	return func(args []float64) (Constructor, error) {
		v, err := ints(name, args)
		if err != nil {
			return nil, err
		}
		return f(v[0]), nil
	}
}

func binary(name string, f func(int, int) Constructor) func([]float64) (Constructor, error) {
	return func(args []float64) (Constructor, error) {
		v, err := ints(name, args)
		if err != nil {
			return nil, err
		}
		return f(v[0], v[1]), nil
	}
}

func init() {
	register(Generator{Name: "empty", Params: []string{"n"}, Summary: "n isolated nodes", build: unary("empty", Empty)})
	register(Generator{Name: "complete", Params: []string{"n"}, Summary: "clique K_n", build: unary("complete", Complete)})
	register(Generator{Name: "path", Params: []string{"n"}, Summary: "path P_n", build: unary("path", Path)})
	register(Generator{Name: "cycle", Params: []string{"n"}, Summary: "cycle C_n", build: unary("cycle", Cycle)})
	register(Generator{Name: "star", Params: []string{"k"}, Summary: "hub with k leaves", build: unary("star", Star)})
	register(Generator{Name: "wheel", Params: []string{"n"}, Summary: "hub plus (n-1)-cycle rim", build: unary("wheel", Wheel)})
	register(Generator{Name: "ladder", Params: []string{"n"}, Summary: "two n-paths joined by rungs", build: unary("ladder", Ladder)})
	register(Generator{Name: "circular_ladder", Params: []string{"n"}, Summary: "ladder with both rails closed", build: unary("circular_ladder", CircularLadder)})
	register(Generator{Name: "binomial_tree", Params: []string{"order"}, Summary: "binomial tree on 2^order nodes", build: unary("binomial_tree", BinomialTree)})
	register(Generator{Name: "balanced_tree", Params: []string{"r", "h"}, Summary: "perfect r-ary tree of height h", build: binary("balanced_tree", BalancedTree)})
	register(Generator{Name: "full_mary_tree", Params: []string{"m", "n"}, Summary: "full m-ary tree on n nodes", build: binary("full_mary_tree", FullMaryTree)})
	register(Generator{Name: "barbell", Params: []string{"m1", "m2"}, Summary: "two K_m1 joined by an m2-path", build: binary("barbell", Barbell)})
	register(Generator{Name: "lollipop", Params: []string{"m", "n"}, Summary: "K_m with an n-path tail", build: binary("lollipop", Lollipop)})
	register(Generator{Name: "turan", Params: []string{"n", "r"}, Summary: "balanced complete r-partite graph", build: binary("turan", Turan)})
	register(Generator{Name: "complete_bipartite", Params: []string{"n1", "n2"}, Summary: "complete bipartite graph K_n1,n2", build: binary("complete_bipartite", CompleteBipartite)})
	register(Generator{Name: "grid_2d", Params: []string{"rows", "cols"}, Summary: "rows×cols lattice, 4-neighborhood", build: binary("grid_2d", Grid)})
	register(Generator{Name: "random_regular", Params: []string{"n", "d"}, Summary: "random simple d-regular graph; needs a seed", build: binary("random_regular", RandomRegular)})
	register(Generator{Name: "dorogovtsev_goltsev_mendes", Params: []string{"gen"}, Summary: "pseudo-fractal triangle expansion", build: unary("dorogovtsev_goltsev_mendes", DorogovtsevGoltsevMendes)})
	register(Generator{
		Name: "circulant", Params: []string{"n", "offsets"}, Variadic: true,
		Summary: "i joined to (i+|o|) mod n",
		build: func(args []float64) (Constructor, error) {
			v, err := ints("circulant", args)
			if err != nil {
				return nil, err
			}
			return Circulant(v[0], v[1:]), nil
		},
	})
	register(Generator{
		Name: "complete_multipartite", Params: []string{"sizes"}, Variadic: true,
		Summary: "complete multipartite graph over the given block sizes",
		build: func(args []float64) (Constructor, error) {
			v, err := ints("complete_multipartite", args)
			if err != nil {
				return nil, err
			}
			return CompleteMultipartite(v...), nil
		},
	})
	register(Generator{
		Name: "random_sparse", Params: []string{"n", "p"},
		Summary: "Erdős–Rényi G(n,p); needs a seed",
		build: func(args []float64) (Constructor, error) {
			v, err := ints("random_sparse", args[:1])
			if err != nil {
				return nil, err
			}
			return RandomSparse(v[0], args[1]), nil
		},
	})
}
