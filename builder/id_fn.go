// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// id_fn.go: label schemes mapping a node index to its label.
//
// Every scheme is injective over idx ≥ 0 so that generators composed on one
// store never collide. Schemes panic on negative indices; constructors never
// produce them.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn maps an absolute node index to its label.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal ("0","1",...), matching core's own
// default label for AddNode("").
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// AlphanumericIDFn renders idx in base 36 ("0".."z","10",...).
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn renders idx as a spreadsheet column ("A".."Z","AA",...).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn prefixes the decimal index, e.g. prefix "v" → "v0","v1",...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is shorthand for WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// IDScheme resolves a scheme by name: "decimal" (or ""), "alphanumeric",
// "excel", or "prefix:<symbol>".
func IDScheme(name string) (IDFn, error) {
	if prefix, ok := strings.CutPrefix(name, "prefix:"); ok {
		return SymbolNumberIDFn(prefix), nil
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "decimal":
		return DefaultIDFn, nil
	case "alphanumeric":
		return AlphanumericIDFn, nil
	case "excel":
		return ExcelColumnIDFn, nil
	default:
		return nil, fmt.Errorf("IDScheme(%q): %w", name, ErrBadArguments)
	}
}
