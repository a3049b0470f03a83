// Package builder: shared composition helpers.
//
// Every helper addresses nodes by ABSOLUTE index (initial + offset) and turns
// the index into a label through cfg. Errors from core are wrapped with the
// calling method so errors.Is keeps working against core sentinels.
package builder

import (
	"strconv"

	"github.com/katalvlaran/topograph/core"
)

// addNodes registers n new nodes with indices start..start+n-1.
//
// Complexity: O(n).
func addNodes(g *core.Graph, cfg builderConfig, method string, start, n int) error {
	for i := 0; i < n; i++ {
		label := cfg.label(start + i)
		if _, err := g.AddNode(label); err != nil {
			return builderErrorf(method, err, "AddNode(%s)", label)
		}
	}

	return nil
}

// addEdge connects absolute indices u and v.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	lu, lv := cfg.label(u), cfg.label(v)
	if err := g.AddEdge(lu, lv); err != nil {
		return builderErrorf(method, err, "AddEdge(%s,%s)", lu, lv)
	}

	return nil
}

// addPath registers indices start..start+n-1 and chains them in order.
func addPath(g *core.Graph, cfg builderConfig, method string, start, n int) error {
	if err := g.AddPath(labelRange(cfg, start, n)); err != nil {
		return builderErrorf(method, err, "AddPath(%d..%d)", start, start+n-1)
	}

	return nil
}

// addClique adds n nodes from start and every pair among them, i<j
// lexicographic. Directed stores also receive j→i right after i→j.
//
// Complexity: O(n²).
func addClique(g *core.Graph, cfg builderConfig, method string, start, n int) error {
	if err := addNodes(g, cfg, method, start, n); err != nil {
		return err
	}
	directed := g.Directed()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := addEdge(g, cfg, method, start+i, start+j); err != nil {
				return err
			}
			if directed {
				if err := addEdge(g, cfg, method, start+j, start+i); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// labelRange returns the labels of indices start..start+n-1.
func labelRange(cfg builderConfig, start, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.label(start + i)
	}

	return out
}

func itoa(v int) string { return strconv.Itoa(v) }

func indexedParam(param string, i int) string { return param + "[" + strconv.Itoa(i) + "]" }
