// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().label(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).label(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithIDScheme(AlphanumericIDFn)).label(35); got != "z" {
		t.Errorf("AlphanumericIDFn: expected \"z\", got %q", got)
	}
	// Last option wins.
	if got := newBuilderConfig(WithExcelColumnIDs(), WithSymbNumb("v")).label(3); got != "v3" {
		t.Errorf("override: expected \"v3\", got %q", got)
	}
}

// TestRandOptions verifies WithSeed reproducibility and WithRand pass-through.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Fatal("default rng must be nil")
	}
	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed(42): draws differ: %d vs %d", a, b)
	}
	r := rand.New(rand.NewSource(1))
	if newBuilderConfig(WithRand(r)).rng != r {
		t.Error("WithRand: rng not attached")
	}
}

// TestLoggerOption verifies debug output only when a logger is configured.
func TestLoggerOption(t *testing.T) {
	t.Parallel()

	newBuilderConfig().debug("silent") // must not panic without a logger

	var buf bytes.Buffer
	cfg := newBuilderConfig(WithLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})))
	cfg.debug("hello", "k", 1)
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("logger output missing message: %q", buf.String())
	}
}

// TestOptionPanics verifies nil arguments are rejected at option construction.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithLogger(nil)":   func() { WithLogger(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestBalancedSize checks the geometric-series node count.
func TestBalancedSize(t *testing.T) {
	t.Parallel()

	cases := []struct{ r, h, want int }{
		{0, 5, 1}, {2, 0, 1}, {2, 3, 15}, {3, 2, 13}, {4, 1, 5},
	}
	for _, c := range cases {
		if got, _ := balancedSize(c.r, c.h); got != c.want {
			t.Errorf("balancedSize(%d,%d) = %d, want %d", c.r, c.h, got, c.want)
		}
	}
}

// TestTuranPartition checks the balanced split, smaller blocks first.
func TestTuranPartition(t *testing.T) {
	t.Parallel()

	got := turanPartition(7, 3)
	want := []int{2, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("turanPartition(7,3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("turanPartition(7,3) = %v, want %v", got, want)
		}
	}
}
