// SPDX-License-Identifier: MIT
//
// File: recipe.go
// Role: Recipe model, decoding and validation.

package recipe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topograph/builder"
	"github.com/katalvlaran/topograph/layout"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates an extension or format name other than toml/yaml.
	ErrUnsupportedFormat = errors.New("recipe: unsupported format")

	// ErrInvalid indicates a recipe that decodes but cannot be built.
	ErrInvalid = errors.New("recipe: invalid")
)

// Format names a serialization.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Recipe is the decoded document.
type Recipe struct {
	Directed bool        `toml:"directed" yaml:"directed"`
	Seed     *int64      `toml:"seed" yaml:"seed,omitempty"`
	IDScheme string      `toml:"id_scheme" yaml:"id_scheme,omitempty"`
	Steps    []Step      `toml:"step" yaml:"step"`
	Edges    []Edge      `toml:"edge" yaml:"edge,omitempty"`
	Layout   *LayoutSpec `toml:"layout" yaml:"layout,omitempty"`
}

// Step invokes one registered generator.
type Step struct {
	Generator string    `toml:"generator" yaml:"generator"`
	Args      []float64 `toml:"args" yaml:"args"`
}

// Edge adds one edge by label after all steps ran. Unknown labels are created.
type Edge struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

// LayoutSpec selects and tunes a layout. Zero fields keep the kind's defaults.
type LayoutSpec struct {
	Kind        string  `toml:"kind" yaml:"kind"`
	Width       float64 `toml:"width" yaml:"width,omitempty"`
	Height      float64 `toml:"height" yaml:"height,omitempty"`
	NodeRadius  float64 `toml:"node_radius" yaml:"node_radius,omitempty"`
	Resolution  float64 `toml:"resolution" yaml:"resolution,omitempty"`
	Equidistant bool    `toml:"equidistant" yaml:"equidistant,omitempty"`
	Iterations  int     `toml:"iterations" yaml:"iterations,omitempty"`
	Seed        *int64  `toml:"seed" yaml:"seed,omitempty"`
}

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and validates the recipe at path.
func Load(path string) (*Recipe, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}

	r, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Parse decodes and validates data in the given format.
func Parse(data []byte, format Format) (*Recipe, error) {
	var r Recipe
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate checks generator names, argument arity, the ID scheme and the
// layout kind without building anything. Parameter ranges are checked by the
// generators themselves during Build.
func (r *Recipe) Validate() error {
	if _, err := builder.IDScheme(r.IDScheme); err != nil {
		return fmt.Errorf("id_scheme: %w: %w", ErrInvalid, err)
	}
	for i, s := range r.Steps {
		gen, err := builder.Lookup(s.Generator)
		if err != nil {
			return fmt.Errorf("step %d: %w: %w", i, ErrInvalid, err)
		}
		if _, err := gen.Constructor(s.Args...); err != nil {
			return fmt.Errorf("step %d: %w: %w", i, ErrInvalid, err)
		}
	}
	for i, e := range r.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("edge %d: empty endpoint: %w", i, ErrInvalid)
		}
	}
	if r.Layout != nil {
		if _, err := layout.ParseKind(r.Layout.Kind); err != nil {
			return fmt.Errorf("layout: %w: %w", ErrInvalid, err)
		}
		if r.Layout.Width < 0 || r.Layout.Height < 0 {
			return fmt.Errorf("layout: negative frame: %w", ErrInvalid)
		}
	}

	return nil
}

// Marshal encodes r in the given format.
func (r *Recipe) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(r); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return []byte(sb.String()), nil
	case FormatYAML:
		return yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}
}
