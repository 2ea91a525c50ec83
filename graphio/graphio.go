// Package graphio reads and writes graph definitions (nodes with labels plus
// undirected weighted edges) as YAML or JSON documents.
//
// Document shape (YAML shown; JSON uses the same keys):
//
//	nodes:
//	  - id: n0
//	    label: A
//	  - id: n1
//	    label: B
//	edges:
//	  - from: n0
//	    to: n1
//	    weight: 10
//
// Node order in the document is the solver order: the first node is the start
// of every cycle. Pairs without an edge are allowed and cost 0 in the solvers.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tspexact/core"
	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unsupported document format or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrInvalidGraph indicates the document decoded but describes an invalid graph.
	ErrInvalidGraph = errors.New("graphio: invalid graph")
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps "yaml"/"yml"/"json" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Document is the serialized form of a graph.
type Document struct {
	Nodes []NodeDoc `yaml:"nodes" json:"nodes"`
	Edges []EdgeDoc `yaml:"edges" json:"edges"`
}

// NodeDoc is a serialized node.
type NodeDoc struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// EdgeDoc is a serialized undirected edge.
type EdgeDoc struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// FromGraph snapshots g into a Document (nodes in insertion order, edges by ID).
func FromGraph(g *core.Graph) Document {
	nodes := g.Nodes()
	edges := g.Edges()
	doc := Document{
		Nodes: make([]NodeDoc, len(nodes)),
		Edges: make([]EdgeDoc, len(edges)),
	}
	var i int
	for i = range nodes {
		doc.Nodes[i] = NodeDoc{ID: nodes[i].ID, Label: nodes[i].Label}
	}
	for i = range edges {
		doc.Edges[i] = EdgeDoc{From: edges[i].From, To: edges[i].To, Weight: edges[i].Weight}
	}

	return doc
}

// Graph builds a core.Graph from the document. Every core validation failure
// is reported as ErrInvalidGraph with the offending element.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	var i int
	for i = range d.Nodes {
		if err := g.AddNode(d.Nodes[i].ID, d.Nodes[i].Label); err != nil {
			return nil, fmt.Errorf("%w: node #%d (%q): %v", ErrInvalidGraph, i, d.Nodes[i].ID, err)
		}
	}
	for i = range d.Edges {
		e := d.Edges[i]
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge #%d (%s-%s): %v", ErrInvalidGraph, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Decode reads a Document in the given format and builds the graph.
func Decode(r io.Reader, format Format) (*core.Graph, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphio: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("graphio: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return doc.Graph()
}

// Encode writes g as a Document in the given format.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	doc := FromGraph(g)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load reads a graph file; the format comes from its extension.
func Load(path string) (*core.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, format)
}

// Save writes g to path; the format comes from its extension.
func Save(path string, g *core.Graph) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, g, format)
}
