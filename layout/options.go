// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/topograph/core"
)

// Option overrides a field of the default configuration chosen by Compute.
// Fields that do not apply to the selected kind are ignored.
type Option func(*options)

type options struct {
	nodeRadius  *float64
	resolution  *float64
	equidistant bool
	iterations  *int
	seed        *int64
	logger      *log.Logger
}

// WithNodeRadius sets the node radius used for insets and padding.
func WithNodeRadius(r float64) Option { return func(o *options) { o.nodeRadius = &r } }

// WithResolution sets the spiral angle step in radians.
func WithResolution(rad float64) Option { return func(o *options) { o.resolution = &rad } }

// WithEquidistant switches the spiral to constant chord spacing.
func WithEquidistant() Option { return func(o *options) { o.equidistant = true } }

// WithIterations sets the force-directed iteration count.
func WithIterations(n int) Option { return func(o *options) { o.iterations = &n } }

// WithSeed seeds the random and force-directed layouts.
func WithSeed(seed int64) Option { return func(o *options) { o.seed = &seed } }

// WithLogger routes a debug summary of each computation to l.
// Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("layout: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// Configure returns the default configuration for kind with opts applied.
func Configure(kind Kind, opts ...Option) (Layout, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindArc:
		return ArcConfig{}, nil
	case KindCircular:
		c := DefaultCircularConfig()
		setFloat(&c.NodeRadius, o.nodeRadius)
		return c, nil
	case KindSpiral:
		c := DefaultSpiralConfig()
		setFloat(&c.NodeRadius, o.nodeRadius)
		setFloat(&c.Resolution, o.resolution)
		c.Equidistant = o.equidistant
		return c, nil
	case KindRandom:
		c := DefaultRandomConfig()
		setFloat(&c.NodeRadius, o.nodeRadius)
		if o.seed != nil {
			c.Seed = *o.seed
		}
		return c, nil
	case KindForce:
		c := DefaultForceDirectedConfig()
		setFloat(&c.NodeRadius, o.nodeRadius)
		if o.seed != nil {
			c.Seed = *o.seed
		}
		if o.iterations != nil {
			c.Iterations = *o.iterations
		}
		return c, nil
	default:
		return nil, fmt.Errorf("Configure(%q): %w", kind, ErrUnknownKind)
	}
}

// Compute dispatches on kind and returns positions indexed by node id.
func Compute(v core.View, kind Kind, f Frame, opts ...Option) ([]Position, error) {
	l, err := Configure(kind, opts...)
	if err != nil {
		return nil, err
	}
	pos, err := l.Compute(v, f)
	if err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", kind, err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		o.logger.Debug("layout computed", "kind", kind, "nodes", len(pos), "width", f.Width, "height", f.Height)
	}

	return pos, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
