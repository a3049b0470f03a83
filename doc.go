// Package topograph builds classic graph topologies in memory, answers the
// basic neighborhood questions about them, and lays them out in 2D.
//
// 🚀 What is topograph?
//
//	A small, deterministic toolkit that brings together:
//		• Core store: label↔id bijection, insertion-ordered adjacency rows,
//		  an edge-call counter and a directed/undirected flag
//		• Generators: complete, path, cycle, star, wheel, ladders, circulant,
//		  trees, barbell, lollipop, multipartite, Turán, DGM, grid, random
//		• Queries: degree, average degree, density, (non-/common) neighbors
//		• Layouts: arc, circular, spiral, random, force-directed
//		• Output: adjacency dump, JSON/YAML layouts, DOT and SVG
//
// ✨ Why topograph?
//
//   - Exact – edge emission order is part of each generator's contract
//   - Composable – generators append to one store, numbering after what is there
//   - Structured errors – errors.Is / errors.As on every failure
//   - Reproducible – random generators and layouts take explicit seeds
//
// Everything is organized under these packages:
//
//	core/          Graph store, node identity, edge insertion and queries
//	builder/       generator constructors, options and the name registry
//	layout/        2D placement over a read-only core.View
//	render/        DOT serialization and Graphviz SVG rendering
//	recipe/        TOML/YAML graph recipes
//	internal/cli/  the topograph command
//
// Quick ASCII example, builder.Barbell(3, 1):
//
//	0───1       5───6
//	 \ /         \ /
//	  2─────3─────4
//
// two triangles joined through a one-node path.
//
//	go install github.com/katalvlaran/topograph/cmd/topograph@latest
package topograph
