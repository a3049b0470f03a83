// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Position, Frame, Kind, the Layout interface and sentinel errors.

package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/topograph/core"
)

// Sentinel errors for layout computation.
var (
	// ErrUnknownKind indicates a layout name that ParseKind does not recognize.
	ErrUnknownKind = errors.New("layout: unknown kind")

	// ErrBadFrame indicates a frame with non-positive width or height.
	ErrBadFrame = errors.New("layout: frame must have positive width and height")

	// ErrBadConfig indicates a configuration value outside its domain.
	ErrBadConfig = errors.New("layout: invalid configuration")
)

// Position represents a 2D coordinate.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Frame is the drawing area. It replaces any notion of a global window size.
type Frame struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Default frame dimensions.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// DefaultFrame returns the 640×480 frame.
func DefaultFrame() Frame { return Frame{Width: DefaultWidth, Height: DefaultHeight} }

func (f Frame) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("frame %gx%g: %w", f.Width, f.Height, ErrBadFrame)
	}

	return nil
}

func (f Frame) center() (float64, float64) { return f.Width / 2, f.Height / 2 }

func (f Frame) minDim() float64 {
	if f.Width < f.Height {
		return f.Width
	}

	return f.Height
}

// Kind names a layout algorithm.
type Kind string

// Supported layout kinds.
const (
	KindArc      Kind = "arc"
	KindCircular Kind = "circular"
	KindSpiral   Kind = "spiral"
	KindRandom   Kind = "random"
	KindForce    Kind = "force"
)

// Kinds lists every supported kind in documentation order.
func Kinds() []Kind {
	return []Kind{KindArc, KindCircular, KindSpiral, KindRandom, KindForce}
}

// ParseKind resolves a case-insensitive name; "force_directed" is accepted
// as an alias of "force".
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "force_directed" || k == "force-directed" {
		return KindForce, nil
	}
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Layout computes node positions for a read-only view.
type Layout interface {
	// Kind reports the algorithm name.
	Kind() Kind
	// Compute returns one Position per node, indexed by id.
	Compute(v core.View, f Frame) ([]Position, error)
}

// New returns the default configuration for kind.
func New(kind Kind) (Layout, error) { return Configure(kind) }
