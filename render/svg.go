// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ErrClosed is returned when a RenderContext is used after Close.
var ErrClosed = errors.New("render: context closed")

// Engine names the Graphviz layout program used for SVG output.
type Engine string

const (
	// EngineDot is Graphviz's hierarchical layout; it ignores pos attributes.
	EngineDot Engine = "dot"
	// EngineNeato keeps nodes pinned with pos="x,y!" where they were placed.
	EngineNeato Engine = "neato"
)

// RenderContext owns one embedded Graphviz instance. It is not safe for
// concurrent use; create one per goroutine.
type RenderContext struct {
	gv *graphviz.Graphviz
}

// NewRenderContext starts a Graphviz instance bound to ctx.
func NewRenderContext(ctx context.Context) (*RenderContext, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}

	return &RenderContext{gv: gv}, nil
}

// SVG lays out dot with engine and renders it. An empty engine means EngineDot.
// Use Options.Engine to pick the engine matching the DOT text.
func (rc *RenderContext) SVG(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	if rc == nil || rc.gv == nil {
		return nil, ErrClosed
	}
	if engine == "" {
		engine = EngineDot
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := rc.gv.SetLayout(graphviz.Layout(engine)).Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", engine, err)
	}

	return buf.Bytes(), nil
}

// Close releases the Graphviz instance. Calling Close twice is a no-op.
func (rc *RenderContext) Close() error {
	if rc == nil || rc.gv == nil {
		return nil
	}
	err := rc.gv.Close()
	rc.gv = nil

	return err
}

// RenderSVG renders dot to SVG with a short-lived RenderContext.
func RenderSVG(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	rc, err := NewRenderContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return rc.SVG(ctx, dot, engine)
}
