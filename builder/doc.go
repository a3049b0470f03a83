// Package builder expands a handful of integer parameters into exact,
// order-sensitive graph topologies on a core.Graph.
//
// The package offers the following key components:
//
//   - Constructor: a closure func(*core.Graph, builderConfig) error produced by
//     one factory per topology (Empty, Complete, Path, Cycle, Star, Wheel,
//     Ladder, CircularLadder, Circulant, BinomialTree, BalancedTree,
//     FullMaryTree, Barbell, Lollipop, CompleteMultipartite, Turan,
//     DorogovtsevGoltsevMendes, CompleteBipartite, Grid, RandomSparse,
//     RandomRegular).
//   - Orchestration: BuildGraph creates a store and applies constructors in
//     order; Apply does the same on an existing store.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithIDScheme:   label strategy (DefaultIDFn, AlphanumericIDFn,
//     ExcelColumnIDFn, SymbolNumberIDFn).
//     – WithSeed/WithRand: RNG for RandomSparse and RandomRegular.
//     – WithLogger:     debug tracing through charmbracelet/log.
//   - Registry: Lookup/Generators expose factories by snake_case name for
//     recipe files and the command line.
//
// Guarantees:
//
//   - Append-only composition: every constructor numbers its nodes from
//     g.NumberOfNodes() at call time, so two constructors applied in sequence
//     yield the disjoint union of both topologies.
//   - Validation precedes mutation: an *InvalidParameterError leaves node and
//     edge counts unchanged.
//   - Edge emission order is documented per constructor and is part of the
//     contract; adjacency dumps are stable across runs.
//   - Structured errors: errors.Is(err, ErrNegativeSize) separates negative
//     counts from relational violations (errors.Is(err, ErrConstraint)); both
//     match ErrInvalidParameter, and errors.As yields the parameter name/value.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Barbell(3, 2), builder.Star(4))
//	if err != nil {
//		return err
//	}
//	fmt.Print(g.AdjacencyList(" "))
package builder
