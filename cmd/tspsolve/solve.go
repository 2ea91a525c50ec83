package main

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/tspexact/builder"
	"github.com/katalvlaran/tspexact/core"
	"github.com/katalvlaran/tspexact/graphio"
	"github.com/katalvlaran/tspexact/metrics"
	"github.com/katalvlaran/tspexact/report"
	"github.com/katalvlaran/tspexact/tsp"
	"github.com/spf13/cobra"
)

// solveFlags mirrors the config keys a user may override per run.
type solveFlags struct {
	graphPath   string
	nodes       int
	seed        int64
	algorithm   string
	format      string
	outDir      string
	top         int
	export      bool
	metricsFile string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a graph file or a random complete graph",
		Example: `  tspsolve solve --nodes 9 --seed 42
  tspsolve solve --graph city.yaml --algorithm bruteforce --top 0 --export`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolveOverrides(cmd, a, &f)
			return a.runSolve(cmd.Context(), f.graphPath)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.graphPath, "graph", "g", "", "graph file (.yaml, .yml or .json); random graph when empty")
	fl.IntVarP(&f.nodes, "nodes", "n", 0, "random graph size")
	fl.Int64Var(&f.seed, "seed", 0, "random graph seed (0 = clock)")
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "auto, bruteforce or heldkarp")
	fl.StringVar(&f.format, "format", "", "export format: json or yaml")
	fl.StringVarP(&f.outDir, "out", "o", "", "export directory")
	fl.IntVar(&f.top, "top", 0, "routes to print (0 = all)")
	fl.BoolVar(&f.export, "export", false, "write the full ranked result to a file")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

// applySolveOverrides copies explicitly set flags over the loaded config.
func applySolveOverrides(cmd *cobra.Command, a *app, f *solveFlags) {
	fl := cmd.Flags()
	if fl.Changed("nodes") {
		a.cfg.Generator.Nodes = f.nodes
	}
	if fl.Changed("seed") {
		a.cfg.Generator.Seed = f.seed
	}
	if fl.Changed("algorithm") {
		a.cfg.Solver.Algorithm = f.algorithm
	}
	if fl.Changed("format") {
		a.cfg.Output.Format = f.format
	}
	if fl.Changed("out") {
		a.cfg.Output.Dir = f.outDir
	}
	if fl.Changed("top") {
		a.cfg.Output.Top = f.top
	}
	if fl.Changed("export") {
		a.cfg.Output.Export = f.export
	}
	if fl.Changed("metrics-file") {
		a.cfg.Metrics.Textfile = f.metricsFile
	}
}

// solveOutcome carries a finished solve across the worker goroutine.
type solveOutcome struct {
	results []tsp.RouteResult
	stats   tsp.SolveStats
	err     error
}

// runSolve loads or generates the graph, solves it and prints the ranking.
func (a *app) runSolve(ctx context.Context, graphPath string) error {
	rec := metrics.NewRecorder()
	defer a.flushMetrics(rec)

	if err := a.cfg.Validate(); err != nil {
		rec.ObserveError(err)
		return err
	}
	algo, err := tsp.ParseAlgorithm(a.cfg.Solver.Algorithm)
	if err != nil {
		rec.ObserveError(err)
		return fmt.Errorf("--algorithm %q: %w", a.cfg.Solver.Algorithm, err)
	}
	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	g, err := a.loadGraph(graphPath)
	if err != nil {
		return err
	}
	ids := g.NodeIDs()
	if missing := g.MissingPairs(); len(missing) > 0 {
		a.logger.Warn("graph is not complete; missing pairs cost 0", "missing", len(missing))
	}

	a.logger.Info("solving", "nodes", len(ids), "algorithm", algo.Resolve(len(ids)).String())
	out, err := solveAsync(ctx, ids, g.Weight, algo)
	if err != nil {
		rec.ObserveError(err)
		return err
	}
	rec.Observe(len(ids), out.stats)
	a.logger.Info("solved",
		"algorithm", out.stats.AlgorithmName(),
		"evaluated_routes", out.stats.EvaluatedRoutes,
		"optimal_cost", out.stats.OptimalCost,
		"elapsed_ms", out.stats.ElapsedMillis(),
	)

	shown, err := report.Build(ids, out.results, out.stats, g.Label, a.cfg.Output.Top)
	if err != nil {
		return err
	}
	if err = shown.WriteText(a.out); err != nil {
		return err
	}

	if !a.cfg.Output.Export {
		return nil
	}
	full, err := report.Build(ids, out.results, out.stats, g.Label, 0)
	if err != nil {
		return err
	}
	path, err := full.WriteFile(a.cfg.Output.Dir, format)
	if err != nil {
		return err
	}
	a.logger.Info("exported results", "path", path, "run_id", full.Metadata.RunID)

	return nil
}

// solveAsync runs the solver off the command goroutine so an interrupt is
// honoured immediately; the solver itself cannot be stopped and its result is
// discarded.
func solveAsync(ctx context.Context, ids []string, cost tsp.CostFunc, algo tsp.Algorithm) (solveOutcome, error) {
	done := make(chan solveOutcome, 1)
	go func() {
		results, stats, err := tsp.Solve(ids, cost, algo)
		done <- solveOutcome{results: results, stats: stats, err: err}
	}()

	select {
	case out := <-done:
		return out, out.err
	case <-ctx.Done():
		return solveOutcome{}, fmt.Errorf("solve interrupted: %w", ctx.Err())
	}
}

// loadGraph reads graphPath, or generates a random complete graph from the
// already validated config.
func (a *app) loadGraph(graphPath string) (*core.Graph, error) {
	if graphPath != "" {
		g, err := graphio.Load(graphPath)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded graph", "path", graphPath, "nodes", g.NodeCount(), "edges", g.EdgeCount())

		return g, nil
	}

	gen := a.cfg.Generator
	seed := gen.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("generating random graph", "nodes", gen.Nodes, "seed", seed,
		"min_weight", gen.MinWeight, "max_weight", gen.MaxWeight)

	return builder.RandomComplete(gen.Nodes,
		builder.WithSeed(seed),
		builder.WithWeightFn(builder.UniformIntWeightFn(gen.MinWeight, gen.MaxWeight)),
	)
}

// flushMetrics writes the textfile when configured; failures are logged only.
func (a *app) flushMetrics(rec *metrics.Recorder) {
	path := a.cfg.Metrics.Textfile
	if path == "" {
		return
	}
	if err := rec.WriteTextfile(path); err != nil {
		a.logger.Error("write metrics textfile", "path", path, "err", err)
		return
	}
	a.logger.Debug("wrote metrics textfile", "path", path)
}
