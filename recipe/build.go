// SPDX-License-Identifier: MIT

package recipe

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/topograph/builder"
	"github.com/katalvlaran/topograph/core"
	"github.com/katalvlaran/topograph/layout"
)

// Build materializes r into a fresh store. logger may be nil.
//
// Steps run in order through builder.Apply; extra edges are added after the
// last step. The first failing step aborts with its position in the error.
func (r *Recipe) Build(logger *log.Logger) (*core.Graph, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	idFn, _ := builder.IDScheme(r.IDScheme)
	bopts := []builder.BuilderOption{builder.WithIDScheme(idFn)}
	if r.Seed != nil {
		bopts = append(bopts, builder.WithSeed(*r.Seed))
	}
	if logger != nil {
		bopts = append(bopts, builder.WithLogger(logger))
	}

	g := core.NewGraph(core.WithDirected(r.Directed))
	cons := make([]builder.Constructor, len(r.Steps))
	for i, s := range r.Steps {
		gen, _ := builder.Lookup(s.Generator)
		con, _ := gen.Constructor(s.Args...)
		cons[i] = con
	}
	if err := builder.Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("build recipe: %w", err)
	}

	for i, e := range r.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("build recipe: edge %d: %w", i, err)
		}
	}
	if logger != nil {
		logger.Debug("recipe built", "steps", len(r.Steps), "extra_edges", len(r.Edges),
			"nodes", g.NumberOfNodes(), "edges", g.NumberOfEdges())
	}

	return g, nil
}

// LayoutPlan converts the layout section into a Layout and Frame. A recipe
// without a layout section yields the circular default on a 640×480 frame.
func (r *Recipe) LayoutPlan() (layout.Layout, layout.Frame, error) {
	spec := r.Layout
	if spec == nil {
		spec = &LayoutSpec{Kind: string(layout.KindCircular)}
	}

	kind, err := layout.ParseKind(spec.Kind)
	if err != nil {
		return nil, layout.Frame{}, err
	}
	frame := layout.DefaultFrame()
	if spec.Width > 0 {
		frame.Width = spec.Width
	}
	if spec.Height > 0 {
		frame.Height = spec.Height
	}

	var opts []layout.Option
	if spec.NodeRadius > 0 {
		opts = append(opts, layout.WithNodeRadius(spec.NodeRadius))
	}
	if spec.Resolution > 0 {
		opts = append(opts, layout.WithResolution(spec.Resolution))
	}
	if spec.Equidistant {
		opts = append(opts, layout.WithEquidistant())
	}
	if spec.Iterations > 0 {
		opts = append(opts, layout.WithIterations(spec.Iterations))
	}
	switch {
	case spec.Seed != nil:
		opts = append(opts, layout.WithSeed(*spec.Seed))
	case r.Seed != nil:
		opts = append(opts, layout.WithSeed(*r.Seed))
	}

	l, err := layout.Configure(kind, opts...)
	if err != nil {
		return nil, layout.Frame{}, err
	}

	return l, frame, nil
}
