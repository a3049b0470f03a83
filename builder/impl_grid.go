// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal lattice with 4-neighborhood.
//   - Cell (r,c) has absolute index start + r·cols + c (row-major) and is
//     labeled through the configured ID scheme like every other generator.
//
// Contract:
//   - rows ≥ 0 and cols ≥ 0 (else ErrNegativeSize). Either zero is a no-op.
//   - For each cell in row-major order emits Right (r,c+1) then Bottom (r+1,c)
//     where they exist. Directed stores also receive the reverse arc
//     immediately after each forward arc.
//
// Complexity:
//   - Time: O(rows·cols). Space: O(1) extra.

package builder

import "github.com/katalvlaran/topograph/core"

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodGrid, "rows", rows); err != nil {
			return err
		}
		if err := validateSize(MethodGrid, "cols", cols); err != nil {
			return err
		}

		start := g.NumberOfNodes()
		if err := addNodes(g, cfg, MethodGrid, start, rows*cols); err != nil {
			return err
		}

		directed := g.Directed()
		link := func(u, v int) error {
			if err := addEdge(g, cfg, MethodGrid, start+u, start+v); err != nil {
				return err
			}
			if directed {
				return addEdge(g, cfg, MethodGrid, start+v, start+u)
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := link(cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
