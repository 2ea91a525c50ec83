// Package tsp - input validation shared by both solvers.
//
// Checks are structural only: count, identifier shape and uniqueness, and a
// non-nil oracle. Edge weights pass through untouched; the oracle owns them.
package tsp

// validateInput verifies the solver preconditions and returns n.
//
// Contract:
//   - len(ids) ≥ MinNodes, else ErrInsufficientNodes (checked first, before anything else).
//   - cost != nil, else ErrNilCostFunc.
//   - every ID non-empty and unique, else ErrEmptyNodeID / ErrDuplicateNode.
//
// Complexity: O(n) time, O(n) space.
func validateInput(ids []string, cost CostFunc) (int, error) {
	var n = len(ids)
	if n < MinNodes {
		return 0, ErrInsufficientNodes
	}
	if cost == nil {
		return 0, ErrNilCostFunc
	}

	seen := make(map[string]struct{}, n)
	var id string
	for _, id = range ids {
		if id == "" {
			return 0, ErrEmptyNodeID
		}
		if _, dup := seen[id]; dup {
			return 0, ErrDuplicateNode
		}
		seen[id] = struct{}{}
	}

	return n, nil
}
