// Package render turns a core.View into Graphviz DOT text and, through
// go-graphviz, into SVG.
//
// ToDOT is pure string building and needs no Graphviz runtime. SVG output
// goes through a RenderContext, an explicit value that owns the embedded
// Graphviz instance; callers create one with NewRenderContext and must Close
// it. RenderSVG is the one-shot convenience that does both.
//
// Node statements carry the store label; when a layout is supplied each node
// also carries a pinned position pos="x,y!" in points, with the y axis
// flipped from screen coordinates into Graphviz's upward axis. Such graphs
// must be rendered with EngineNeato (Options.Engine picks it), since the
// default dot engine discards pinned positions.
package render
