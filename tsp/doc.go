// Package tsp provides exact Travelling Salesman Problem solvers for small,
// fully-connected, undirected graphs (3 ≲ n ≲ 20 vertices).
//
// Vertices are opaque string identifiers; edge weights come from a CostFunc
// (the cost oracle) supplied by the caller. The graph is always treated as
// complete: a pair the caller never modelled must be reported by the oracle
// as weight 0, and the solvers never re-validate what the oracle returns.
//
// Two algorithms are available:
//
//   - SolveBruteForce — enumerates every cycle with the first vertex fixed,
//     i.e. all (n−1)! routes, and returns them ranked by cost.
//
//   - Complexity: Θ((n−1)!·n) time, Θ((n−1)!) results.
//
//   - A route and its mirror image are both reported.
//
//   - SolveHeldKarp — subset dynamic programming over bitmasks; materializes
//     only the optimal route.
//
//   - Complexity: Θ(n²·2ⁿ) time, Θ(n·2ⁿ) memory.
//
// Solve is the single entry point for hosts: it dispatches on an Algorithm
// (Auto, BruteForce, HeldKarp). Auto runs brute force for n ≤ BruteForceMaxNodes
// and Held–Karp above it.
//
// Every call is synchronous and self-contained: memo tables are allocated per
// call and discarded on return, so concurrent calls never share state.
package tsp
