package dot

// Graph is the contract a client graph type must satisfy to be
// rendered. N and E are opaque node and edge handles; the engine never
// compares handles, it only resolves them through the methods below,
// so an index, a pointer or a rich struct all work equally well.
//
// Enumeration methods return owned snapshot slices: the engine does
// not assume the slice is backed by stable storage beyond the call.
//
// All further behavior - kind, labels, styles, colors, shapes, arrows
// and subgraphs - is supplied through the optional capability
// interfaces in this file, discovered by type assertion on the graph
// value. A graph that implements none of them renders with defaults.
type Graph[N, E any] interface {
	// GraphID returns the identifier naming the graph.
	GraphID() (ID, error)

	// NodeID maps n to an identifier unique within the graph.
	NodeID(n N) (ID, error)

	// Nodes returns all nodes in the graph.
	Nodes() []N

	// Edges returns all edges in the graph.
	Edges() []E

	// Source returns the source node of e.
	Source(e E) N

	// Target returns the target node of e.
	Target(e E) N
}

// Kinder lets a graph choose between directed and undirected output.
// Default: KindDigraph.
type Kinder interface {
	Kind() Kind
}

// NodeLabeller supplies display labels for nodes. The label need not
// be unique and may be empty. Default: the node's own identifier text
// as a plain label.
type NodeLabeller[N any] interface {
	NodeLabel(n N) Text
}

// NodeStyler supplies node styles. Default: StyleNone.
type NodeStyler[N any] interface {
	NodeStyle(n N) Style
}

// NodeColorer supplies node colors, typically one of the Graphviz
// color names: https://www.graphviz.org/doc/info/colors.html
// Returning ok == false omits the color attribute (the default).
type NodeColorer[N any] interface {
	NodeColor(n N) (c Text, ok bool)
}

// NodeShaper supplies node shapes, one of the Graphviz shape names:
// https://www.graphviz.org/doc/info/shapes.html
// Returning ok == false omits the shape attribute (the default).
type NodeShaper[N any] interface {
	NodeShape(n N) (s Text, ok bool)
}

// EdgeLabeller supplies display labels for edges. Default: the empty
// plain label.
type EdgeLabeller[E any] interface {
	EdgeLabel(e E) Text
}

// EdgeStyler supplies edge styles. Default: StyleNone.
type EdgeStyler[E any] interface {
	EdgeStyle(e E) Style
}

// EdgeColorer supplies edge colors. Returning ok == false omits the
// color attribute (the default).
type EdgeColorer[E any] interface {
	EdgeColor(e E) (c Text, ok bool)
}

// EdgeArrower supplies the arrows drawn at the two ends of an edge.
// Default: the default arrow at both ends, which leaves the arrowhead
// and arrowtail attributes unset.
type EdgeArrower[E any] interface {
	// EdgeStartArrow returns the arrow at the source end of e.
	EdgeStartArrow(e E) Arrow

	// EdgeEndArrow returns the arrow at the target end of e.
	EdgeEndArrow(e E) Arrow
}

// Subgrapher lets a graph group nodes into subgraph blocks. Default:
// no subgraphs.
type Subgrapher[N any] interface {
	Subgraphs() []Subgraph[N]
}

// Subgraph describes one subgraph block. Prefix the ID with "cluster_"
// (or "cluster") to make Graphviz draw the subgraph in its own
// distinct rectangle.
//
// The zero value of every field is its absent/default form: a zero ID
// emits an anonymous subgraph, a zero Label an empty one, StyleNone no
// style line, and nil Color/Shape no color or shape line.
type Subgraph[N any] struct {
	ID    ID
	Label Text
	Style Style
	Color *Text
	Shape *Text

	// Nodes are the member node handles, emitted as bare id lines
	// inside the block.
	Nodes []N
}
