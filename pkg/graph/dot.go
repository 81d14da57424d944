package graph

import (
	"fmt"
	"io"

	"github.com/matzehuels/dotgen/pkg/dot"
)

// Graph implements dot.Graph[*Node, *Edge] and every optional
// capability interface the engine knows. Attribute strings are parsed
// on the fly; [Graph.Validate] checks them up front, so render-time
// parse failures on a validated document are impossible and the
// capability methods fall back to the neutral default instead of
// erroring.

// GraphID returns the identifier naming the graph.
func (g *Graph) GraphID() (dot.ID, error) { return dot.NewID(g.Name) }

// NodeID returns the node's identifier. A nil node (an edge endpoint
// that resolved to nothing) yields an ErrInvalidID failure, aborting
// the render rather than emitting a dangling reference.
func (g *Graph) NodeID(n *Node) (dot.ID, error) {
	if n == nil {
		return dot.ID{}, fmt.Errorf("%w: edge endpoint references unknown node", dot.ErrInvalidID)
	}
	return dot.NewID(n.ID)
}

// Nodes returns the node handles in document order.
func (g *Graph) Nodes() []*Node { return g.NodeList }

// Edges returns the edge handles in document order.
func (g *Graph) Edges() []*Edge { return g.EdgeList }

// Source resolves the edge's source node, or nil if unknown.
func (g *Graph) Source(e *Edge) *Node { return g.lookup(e.From) }

// Target resolves the edge's target node, or nil if unknown.
func (g *Graph) Target(e *Edge) *Node { return g.lookup(e.To) }

// Kind returns the graph kind derived from the Undirected flag.
func (g *Graph) Kind() dot.Kind {
	if g.Undirected {
		return dot.KindGraph
	}
	return dot.KindDigraph
}

func (g *Graph) lookup(id string) *Node {
	if g.byID == nil {
		g.byID = make(map[string]*Node, len(g.NodeList))
		for _, n := range g.NodeList {
			g.byID[n.ID] = n
		}
	}
	return g.byID[id]
}

// NodeLabel returns the node's display label, falling back to its ID.
func (g *Graph) NodeLabel(n *Node) dot.Text { return parseText(n.DisplayLabel()) }

// NodeStyle returns the node's style, or StyleNone when unset.
func (g *Graph) NodeStyle(n *Node) dot.Style {
	style, _ := ParseStyle(n.Style)
	return style
}

// NodeColor returns the node's color attribute, if set.
func (g *Graph) NodeColor(n *Node) (dot.Text, bool) {
	if n.Color == "" {
		return dot.Text{}, false
	}
	return parseText(n.Color), true
}

// NodeShape returns the node's shape attribute, if set.
func (g *Graph) NodeShape(n *Node) (dot.Text, bool) {
	if n.Shape == "" {
		return dot.Text{}, false
	}
	return parseText(n.Shape), true
}

// EdgeLabel returns the edge's display label; unset labels render as
// the empty string.
func (g *Graph) EdgeLabel(e *Edge) dot.Text { return parseText(e.Label) }

// EdgeStyle returns the edge's style, or StyleNone when unset.
func (g *Graph) EdgeStyle(e *Edge) dot.Style {
	style, _ := ParseStyle(e.Style)
	return style
}

// EdgeColor returns the edge's color attribute, if set.
func (g *Graph) EdgeColor(e *Edge) (dot.Text, bool) {
	if e.Color == "" {
		return dot.Text{}, false
	}
	return parseText(e.Color), true
}

// EdgeStartArrow returns the arrow at the source end of the edge.
func (g *Graph) EdgeStartArrow(e *Edge) dot.Arrow {
	arrow, _ := ParseArrow(e.Tail)
	return arrow
}

// EdgeEndArrow returns the arrow at the target end of the edge.
func (g *Graph) EdgeEndArrow(e *Edge) dot.Arrow {
	arrow, _ := ParseArrow(e.Head)
	return arrow
}

// Subgraphs maps the document's subgraph blocks to their rendering
// form. Invalid subgraph identifiers are rejected by [Graph.WriteDOT]
// before rendering starts; members that reference unknown nodes
// surface later as identifier errors through NodeID.
func (g *Graph) Subgraphs() []dot.Subgraph[*Node] {
	subs := make([]dot.Subgraph[*Node], 0, len(g.SubgraphList))
	for _, sg := range g.SubgraphList {
		sub := dot.Subgraph[*Node]{Label: parseText(sg.Label)}
		if sg.ID != "" {
			if id, err := dot.NewID(sg.ID); err == nil {
				sub.ID = id
			}
		}
		sub.Style, _ = ParseStyle(sg.Style)
		if sg.Color != "" {
			c := parseText(sg.Color)
			sub.Color = &c
		}
		if sg.Shape != "" {
			s := parseText(sg.Shape)
			sub.Shape = &s
		}
		for _, id := range sg.Nodes {
			sub.Nodes = append(sub.Nodes, g.lookup(id))
		}
		subs = append(subs, sub)
	}
	return subs
}

// WriteDOT renders the graph as DOT text into w. Invalid subgraph
// identifiers are rejected before any byte is written; all other
// identifier failures abort the render where they occur. The document
// should be validated first; see [Graph.Validate].
func (g *Graph) WriteDOT(w io.Writer, opts dot.Options) error {
	for _, sg := range g.SubgraphList {
		if sg.ID == "" {
			continue
		}
		if _, err := dot.NewID(sg.ID); err != nil {
			return fmt.Errorf("subgraph: %w", err)
		}
	}
	return dot.RenderOpts(w, dot.Graph[*Node, *Edge](g), opts)
}
