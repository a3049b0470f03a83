// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// constants.go: canonical method names and parameter bounds.

package builder

// Builder Method Name Constants.
// These names prefix every error returned by the corresponding factory and
// appear in debug logs; they are part of the observable contract.
const (
	MethodEmpty                    = "Empty"
	MethodComplete                 = "Complete"
	MethodPath                     = "Path"
	MethodCycle                    = "Cycle"
	MethodStar                     = "Star"
	MethodWheel                    = "Wheel"
	MethodLadder                   = "Ladder"
	MethodCircularLadder           = "CircularLadder"
	MethodCirculant                = "Circulant"
	MethodBinomialTree             = "BinomialTree"
	MethodBalancedTree             = "BalancedTree"
	MethodFullMaryTree             = "FullMaryTree"
	MethodBarbell                  = "Barbell"
	MethodLollipop                 = "Lollipop"
	MethodCompleteMultipartite     = "CompleteMultipartite"
	MethodTuran                    = "Turan"
	MethodDorogovtsevGoltsevMendes = "DorogovtsevGoltsevMendes"
	MethodRandomSparse             = "RandomSparse"
	MethodCompleteBipartite        = "CompleteBipartite"
	MethodGrid                     = "Grid"
	MethodRandomRegular            = "RandomRegular"
)

// Parameter bounds (no magic numbers in validators).
const (
	// minSize is the smallest admissible count for any size-like parameter.
	minSize = 0

	// minCliqueSize is the smallest bell/candy clique for Barbell and Lollipop.
	minCliqueSize = 2

	// minParts is the smallest partition count accepted by Turan.
	minParts = 1

	// wheelCycleMin is the smallest wheel whose rim forms a cycle.
	wheelCycleMin = 3

	// maxBinomialOrder caps BinomialTree at 2^30 nodes.
	maxBinomialOrder = 30

	// maxDGMGeneration caps DorogovtsevGoltsevMendes at 3^19 edges.
	maxDGMGeneration = 19

	// maxTreeNodes caps the derived node count of BalancedTree.
	maxTreeNodes = 1<<31 - 1

	// maxArgMagnitude bounds registry integer arguments.
	maxArgMagnitude = 1<<31 - 1

	// MinProbability and MaxProbability bound the RandomSparse edge probability.
	MinProbability = 0.0
	MaxProbability = 1.0
)
