// Package tspexact solves small travelling-salesman instances exactly.
//
// The module is organised as:
//
//	core/       — thread-safe undirected weighted graph; Weight is the cost oracle
//	builder/    — complete-graph constructors with seeded random weights
//	tsp/        — permutations, route cost, brute force, Held–Karp, dispatcher
//	graphio/    — YAML/JSON graph documents
//	report/     — ranked result export (JSON/YAML) and terminal table
//	metrics/    — Prometheus solve metrics with textfile export
//	config/     — TOML configuration for the CLI
//	cmd/tspsolve — command line front end
//
// Quick start:
//
//	g, _ := builder.RandomComplete(8, builder.WithSeed(42))
//	results, stats, err := tsp.Solve(g.NodeIDs(), g.Weight, tsp.Auto)
//
// Brute force ranks all (n−1)! cycles that start at the first node; Held–Karp
// returns only the optimum in O(n²·2ⁿ). Auto picks brute force up to
// tsp.BruteForceMaxNodes nodes.
package tspexact
