// Package graph defines the JSON document format for decorated graphs
// and adapts it to the rendering contracts in pkg/dot.
//
// The format is the canonical input for the dotgen CLI: a graph with a
// name, nodes, edges and optional subgraphs, each carrying the visual
// attributes (label, style, color, shape, arrowheads) the DOT output
// supports. It is human-readable and designed for round-trip fidelity:
// read → write produces an equivalent document.
//
// A [Graph] satisfies dot.Graph plus every optional capability
// interface, so after [Graph.Validate] it renders directly:
//
//	g, err := graph.ReadGraphFile("deps.json")
//	if err != nil { ... }
//	err = dot.Render(os.Stdout, dot.Graph[*graph.Node, *graph.Edge](g))
//
// # Labels
//
// Label strings select their escaping discipline with an optional
// prefix: "esc:" yields a Graphviz escString (backslash sequences like
// \l pass through), "html:" yields an HTML label (no escaping), and
// anything else is plain text, escaped verbatim.
package graph
