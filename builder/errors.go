// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// errors.go: sentinel errors and the structured parameter error.
//
// Error policy (explicit and strict):
//   • Validation failures are *InvalidParameterError values. They match
//     ErrInvalidParameter and exactly one class sentinel (ErrNegativeSize or
//     ErrConstraint) through errors.Is; errors.As exposes Method/Param/Value.
//   • Other failures use package-level sentinels wrapped with method context via %w.
//   • Constructors MUST NOT panic at runtime; only option constructors (WithX) may.
//
// AI-Hints (practical guidance for implementers):
//   • Negative counts → negativeSize(...). Relational rules (m1<2, r∉[1,n]) → violated(...).
//   • Store failures (duplicate labels under a custom ID scheme) wrap core errors
//     with the method name; errors.Is(err, core.ErrDuplicateLabel) still holds.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every *InvalidParameterError.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject user input */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNegativeSize classifies a count-like parameter below zero
// (n, k, sizes[i], order-independent sizes). Always paired with ErrInvalidParameter.
var ErrNegativeSize = errors.New("builder: negative size")

// ErrConstraint classifies a relational constraint violation
// (clique size below two, r outside [1,n]). Always paired with ErrInvalidParameter.
var ErrConstraint = errors.New("builder: constraint violated")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil Constructor or a store mutation that
// failed halfway through composition.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnsupportedMode indicates a constructor that cannot honor the store's
// directed flag (RandomRegular on a directed store).
var ErrUnsupportedMode = errors.New("builder: unsupported graph mode")

// ErrUnknownGenerator indicates Lookup was asked for a name that is not registered.
var ErrUnknownGenerator = errors.New("builder: unknown generator")

// ErrBadArguments indicates a registry call with the wrong arity or a
// non-integral value for an integer parameter.
var ErrBadArguments = errors.New("builder: bad generator arguments")

// InvalidParameterError reports which parameter of which constructor failed
// validation, and which class of rule it broke.
type InvalidParameterError struct {
	// Method is the canonical constructor name, e.g. "Barbell".
	Method string
	// Param is the parameter name as documented on the factory, e.g. "m1".
	Param string
	// Value is the offending value.
	Value int
	// Rule is a short human description of the bound, e.g. "≥ 2".
	Rule string
	// Kind is ErrNegativeSize or ErrConstraint.
	Kind error
}

// Error renders "<Method>: <param>=<value> must be <rule>: <kind>".
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%d must be %s: %v", e.Method, e.Param, e.Value, e.Rule, e.Kind)
}

// Unwrap exposes both the class sentinel and ErrInvalidParameter to errors.Is.
func (e *InvalidParameterError) Unwrap() []error {
	return []error{e.Kind, ErrInvalidParameter}
}

// negativeSize builds the error for a count-like parameter below zero.
func negativeSize(method, param string, value int) error {
	return &InvalidParameterError{Method: method, Param: param, Value: value, Rule: "≥ 0", Kind: ErrNegativeSize}
}

// violated builds the error for a relational constraint.
func violated(method, param string, value int, rule string) error {
	return &InvalidParameterError{Method: method, Param: param, Value: value, Rule: rule, Kind: ErrConstraint}
}

// builderErrorf wraps an inner error with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
