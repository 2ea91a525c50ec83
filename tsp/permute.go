package tsp

import (
	"iter"
	"math"
	"slices"
)

// Permutations returns a lazy sequence over all k! orderings of items.
//
// Order is deterministic: at every depth the remaining elements are tried in
// their original order and the recursion is depth-first, so for [a b c] the
// sequence is abc, acb, bac, bca, cab, cba. Brute-force tie-breaking relies on
// this order.
//
// The yielded slice is reused between iterations; callers that keep it must
// copy it. For k ≤ 1 a single ordering equal to items is yielded.
//
// Complexity: Θ(k!·k) time over the full sequence, O(k) extra space.
func Permutations(items []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		var k = len(items)
		if k <= 1 {
			yield(slices.Clone(items))
			return
		}

		var (
			buf  = make([]string, k)
			used = make([]bool, k)
			walk func(depth int) bool
		)
		walk = func(depth int) bool {
			if depth == k {
				return yield(buf)
			}
			var i int
			for i = 0; i < k; i++ {
				if used[i] {
					continue
				}
				used[i] = true
				buf[depth] = items[i]
				if !walk(depth + 1) {
					return false
				}
				used[i] = false
			}

			return true
		}
		walk(0)
	}
}

// AllPermutations materializes Permutations(items) into independent slices.
//
// Complexity: Θ(k!·k) time and space.
func AllPermutations(items []string) [][]string {
	out := make([][]string, 0, capacityHint(len(items)))
	for p := range Permutations(items) {
		out = append(out, slices.Clone(p))
	}

	return out
}

// maxPreallocRoutes bounds result preallocation; larger enumerations grow
// their slice as routes are produced.
const maxPreallocRoutes = 1 << 16

// factorial returns k!, saturating at math.MaxInt instead of wrapping.
func factorial(k int) int {
	var f = 1
	var i int
	for i = 2; i <= k; i++ {
		if f > math.MaxInt/i {
			return math.MaxInt
		}
		f *= i
	}

	return f
}

// capacityHint is the slice capacity to reserve for k! results.
func capacityHint(k int) int {
	return min(factorial(k), maxPreallocRoutes)
}
