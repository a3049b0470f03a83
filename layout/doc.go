// Package layout assigns 2D coordinates to the nodes of a core.View.
//
// Every layout kind is a plain configuration struct implementing Layout:
//
//	ArcConfig            nodes on the horizontal midline, edges as semicircles
//	CircularConfig       nodes evenly spaced on the largest inscribed circle
//	SpiralConfig         Archimedean spiral, optionally with equal arc spacing
//	RandomConfig         uniform placement from a seeded source
//	ForceDirectedConfig  Fruchterman–Reingold relaxation from a seeded start
//
// Positions are returned indexed by node id, in screen coordinates of a
// Frame (origin top-left, y grows downward). Layouts read the store through
// core.View only and never mutate it; a graph and several layouts of it can
// coexist without sharing state.
//
// Run bundles a computed layout with node labels and the edge list into a
// Result suitable for JSON or YAML export.
package layout
