// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an *InvalidParameterError when its precondition is
// violated; validation always runs before the first store mutation.
package builder

// validateSize ensures that a count-like parameter is ≥ 0.
//
// Complexity: O(1) time and space.
func validateSize(method, param string, got int) error {
	if got < minSize {
		return negativeSize(method, param, got)
	}

	return nil
}

// validateSizes applies validateSize to each element, naming it param[i].
//
// Complexity: O(len(sizes)).
func validateSizes(method, param string, sizes []int) error {
	for i, s := range sizes {
		if s < minSize {
			return negativeSize(method, indexedParam(param, i), s)
		}
	}

	return nil
}

// validateAtLeast ensures got ≥ min as a relational constraint (ErrConstraint).
func validateAtLeast(method, param string, got, min int) error {
	if got < min {
		return violated(method, param, got, "≥ "+itoa(min))
	}

	return nil
}

// validateAtMost ensures got ≤ max as a relational constraint (ErrConstraint).
func validateAtMost(method, param string, got, max int) error {
	if got > max {
		return violated(method, param, got, "≤ "+itoa(max))
	}

	return nil
}

// validateRange ensures lo ≤ got ≤ hi as a relational constraint (ErrConstraint).
func validateRange(method, param string, got, lo, hi int) error {
	if got < lo || got > hi {
		return violated(method, param, got, "in ["+itoa(lo)+","+itoa(hi)+"]")
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
