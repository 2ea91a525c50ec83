// Package report turns solver output into a labelled, exportable document:
// run metadata, the solve statistics and every ranked route rendered as a
// closed cycle of node labels ("A → C → D → B → A").
//
// Reports serialize to JSON or YAML; WriteFile picks a default name of the
// form TSP_<n>nodes_<unix-millis>.<ext>.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/tspexact/tsp"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrNoResults is returned when there is nothing to export.
	ErrNoResults = errors.New("report: no results to export")

	// ErrUnknownFormat is returned for an export format other than json/yaml.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps "json"/"yaml"/"yml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// arrow separates labels in rendered routes.
const arrow = " → "

// Report is the exported document.
type Report struct {
	Metadata Metadata    `json:"metadata" yaml:"metadata"`
	Config   GraphConfig `json:"configuration" yaml:"configuration"`
	Stats    Stats       `json:"statistics" yaml:"statistics"`
	Routes   []RouteLine `json:"routes" yaml:"routes"`
}

// Metadata identifies a run.
type Metadata struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// GraphConfig describes the solved instance.
type GraphConfig struct {
	NodeCount int      `json:"node_count" yaml:"node_count"`
	Nodes     []string `json:"nodes" yaml:"nodes"`
}

// Stats mirrors tsp.SolveStats with labels instead of IDs.
type Stats struct {
	Algorithm       string   `json:"algorithm" yaml:"algorithm"`
	EvaluatedRoutes int      `json:"evaluated_routes" yaml:"evaluated_routes"`
	OptimalCost     float64  `json:"optimal_cost" yaml:"optimal_cost"`
	OptimalRoute    []string `json:"optimal_route" yaml:"optimal_route"`
	ElapsedMillis   float64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// RouteLine is one ranked route.
type RouteLine struct {
	Number  int     `json:"number" yaml:"number"`
	Route   string  `json:"route" yaml:"route"`
	Cost    float64 `json:"cost" yaml:"cost"`
	Optimal bool    `json:"optimal" yaml:"optimal"`
}

// Labeler maps a node ID to its display label.
type Labeler func(id string) string

// Build assembles a Report. nodes is the solver input order; label may be nil
// (IDs are shown as-is). limit > 0 keeps only the first limit routes; the
// statistics always describe the whole solve.
//
// Errors: ErrNoResults when results is empty.
func Build(nodes []string, results []tsp.RouteResult, stats tsp.SolveStats, label Labeler, limit int) (*Report, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	if label == nil {
		label = func(id string) string { return id }
	}

	labels := make([]string, len(nodes))
	var i int
	for i = range nodes {
		labels[i] = label(nodes[i])
	}

	kept := results
	if limit > 0 && limit < len(kept) {
		kept = kept[:limit]
	}
	lines := make([]RouteLine, len(kept))
	for i = range kept {
		lines[i] = RouteLine{
			Number:  i + 1,
			Route:   RenderRoute(kept[i].Route, label),
			Cost:    kept[i].Cost,
			Optimal: i == 0,
		}
	}

	return &Report{
		Metadata: Metadata{
			RunID:       uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
		Config: GraphConfig{NodeCount: len(nodes), Nodes: labels},
		Stats: Stats{
			Algorithm:       stats.AlgorithmName(),
			EvaluatedRoutes: stats.EvaluatedRoutes,
			OptimalCost:     stats.OptimalCost,
			OptimalRoute:    labelAll(stats.OptimalRoute, label),
			ElapsedMillis:   stats.ElapsedMillis(),
		},
		Routes: lines,
	}, nil
}

// RenderRoute renders the closed cycle with labels: "A → B → C → A".
func RenderRoute(route tsp.Route, label Labeler) string {
	if label == nil {
		return route.String()
	}

	return strings.Join(labelAll(route.Closed(), label), arrow)
}

// OptimalEdges returns the closed-cycle edges of route as unordered pairs
// {route[i], route[(i+1) mod n]}, the set a renderer highlights.
func OptimalEdges(route tsp.Route) [][2]string {
	var n = len(route)
	if n < 2 {
		return nil
	}
	out := make([][2]string, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = [2]string{route[i], route[(i+1)%n]}
	}

	return out
}

// labelAll maps ids through label.
func labelAll(ids []string, label Labeler) []string {
	out := make([]string, len(ids))
	var i int
	for i = range ids {
		out[i] = label(ids[i])
	}

	return out
}

// Encode writes r in the given format.
func (r *Report) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName returns the default export name for r.
func (r *Report) FileName(format Format) string {
	return fmt.Sprintf("TSP_%dnodes_%d.%s", r.Config.NodeCount, r.Metadata.GeneratedAt.UnixMilli(), format)
}

// WriteFile encodes r into dir under FileName and returns the full path. On
// failure no partial file is left behind.
func (r *Report) WriteFile(dir string, format Format) (path string, err error) {
	if format != FormatJSON && format != FormatYAML {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create %s: %w", dir, err)
	}
	name := filepath.Join(dir, r.FileName(format))
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("report: create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(name)
			path = ""
		}
	}()

	if err = r.Encode(f, format); err != nil {
		return "", err
	}

	return name, nil
}
