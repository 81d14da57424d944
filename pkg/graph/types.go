package graph

import (
	"strings"

	"github.com/matzehuels/dotgen/pkg/dot"
)

// Graph is the canonical serialization format for decorated graphs.
// Used as CLI input, for storage, and for cross-tool compatibility.
//
// The list fields are named NodeList/EdgeList/SubgraphList because the
// rendering contract methods Nodes, Edges and Subgraphs live on the
// same type; the JSON keys stay "nodes", "edges" and "subgraphs".
type Graph struct {
	// Name is the DOT identifier naming the graph.
	Name string `json:"name"`

	// Undirected selects "graph" output with "--" edges instead of
	// the default "digraph" with "->".
	Undirected bool `json:"undirected,omitempty"`

	NodeList     []*Node     `json:"nodes"`
	EdgeList     []*Edge     `json:"edges,omitempty"`
	SubgraphList []*Subgraph `json:"subgraphs,omitempty"`

	// byID indexes nodes for edge endpoint resolution. Built lazily;
	// documents are treated as immutable once read.
	byID map[string]*Node
}

// Node is a vertex with optional visual attributes. Only ID is
// required; it must be a valid DOT identifier.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"` // display label, defaults to ID
	Style string `json:"style,omitempty"` // e.g. "dashed", "bold"
	Color string `json:"color,omitempty"` // Graphviz color name or "#rrggbb"
	Shape string `json:"shape,omitempty"` // Graphviz shape name, e.g. "box"
}

// Edge is a directed connection between two node IDs with optional
// visual attributes. Head and Tail are arrow shape token sequences
// per the Graphviz arrowType grammar (see ParseShape), outermost
// first; empty means the default arrow.
type Edge struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Label string   `json:"label,omitempty"`
	Style string   `json:"style,omitempty"`
	Color string   `json:"color,omitempty"`
	Head  []string `json:"head,omitempty"`
	Tail  []string `json:"tail,omitempty"`
}

// Subgraph groups member nodes into a subgraph block. An ID with the
// "cluster" prefix makes Graphviz draw the group in its own
// rectangle; an empty ID emits an anonymous subgraph.
type Subgraph struct {
	ID    string   `json:"id,omitempty"`
	Label string   `json:"label,omitempty"`
	Style string   `json:"style,omitempty"`
	Color string   `json:"color,omitempty"`
	Shape string   `json:"shape,omitempty"`
	Nodes []string `json:"nodes"`
}

// DisplayLabel returns the node's label if set, otherwise its ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// parseText maps a document label string to its dot.Text variant,
// honoring the "esc:" and "html:" prefixes.
func parseText(s string) dot.Text {
	switch {
	case strings.HasPrefix(s, "esc:"):
		return dot.Escaped(strings.TrimPrefix(s, "esc:"))
	case strings.HasPrefix(s, "html:"):
		return dot.HTML(strings.TrimPrefix(s, "html:"))
	default:
		return dot.Plain(s)
	}
}
