// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn   = DefaultIDFn   ("0","1","2",...)
//   • rng    = nil           (pure/deterministic unless seeded)
//   • logger = nil           (silent)

package builder

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Label strategy: node index -> label (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Debug tracing of constructor application; nil disables it.
	logger *log.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label renders the node at absolute index idx.
func (c builderConfig) label(idx int) string { return c.idFn(idx) }

// debug forwards to the logger when one is configured.
func (c builderConfig) debug(msg string, keyvals ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}
