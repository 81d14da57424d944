package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dotgen/pkg/dot"
)

var (
	// ErrDuplicateNodeID is returned by [Graph.Validate] when two
	// nodes share an ID. Node IDs must be unique within a document.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [Graph.Validate] when an edge or
	// subgraph references a node ID that does not exist.
	ErrUnknownNode = errors.New("unknown node")
)

// MarshalGraph converts a graph document to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph document as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// WriteGraphFile writes a graph document to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// ReadGraph decodes and validates a JSON graph document from r.
func ReadGraph(r io.Reader) (*Graph, error) {
	return readGraphFrom(r)
}

// ReadGraphFile reads a JSON file and returns the decoded, validated
// graph document.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

func writeGraphTo(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks the document for renderability: the graph and node
// names must be valid DOT identifiers and unique, every edge and
// subgraph member must reference an existing node, and every style
// and arrow token must parse. A validated document renders without
// attribute errors.
func (g *Graph) Validate() error {
	if !dot.ValidID(g.Name) {
		return fmt.Errorf("graph name: %w: %q", dot.ErrInvalidID, g.Name)
	}

	seen := make(map[string]bool, len(g.NodeList))
	for _, n := range g.NodeList {
		if !dot.ValidID(n.ID) {
			return fmt.Errorf("node: %w: %q", dot.ErrInvalidID, n.ID)
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = true

		if _, err := ParseStyle(n.Style); err != nil {
			return fmt.Errorf("node %s: %w", n.ID, err)
		}
	}

	for _, e := range g.EdgeList {
		if !seen[e.From] {
			return fmt.Errorf("edge %s -> %s: %w: %q", e.From, e.To, ErrUnknownNode, e.From)
		}
		if !seen[e.To] {
			return fmt.Errorf("edge %s -> %s: %w: %q", e.From, e.To, ErrUnknownNode, e.To)
		}
		if _, err := ParseStyle(e.Style); err != nil {
			return fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
		if _, err := ParseArrow(e.Head); err != nil {
			return fmt.Errorf("edge %s -> %s: head: %w", e.From, e.To, err)
		}
		if _, err := ParseArrow(e.Tail); err != nil {
			return fmt.Errorf("edge %s -> %s: tail: %w", e.From, e.To, err)
		}
	}

	for _, sg := range g.SubgraphList {
		if sg.ID != "" && !dot.ValidID(sg.ID) {
			return fmt.Errorf("subgraph: %w: %q", dot.ErrInvalidID, sg.ID)
		}
		if _, err := ParseStyle(sg.Style); err != nil {
			return fmt.Errorf("subgraph %s: %w", sg.ID, err)
		}
		for _, id := range sg.Nodes {
			if !seen[id] {
				return fmt.Errorf("subgraph %s: %w: %q", sg.ID, ErrUnknownNode, id)
			}
		}
	}

	return nil
}
