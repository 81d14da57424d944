package dot

// Kind determines whether "digraph" or "graph" is used as the keyword
// for the graph, and with it the edge operator ("->" or "--").
// KindDigraph is the zero value and the default for graphs that do not
// implement [Kinder].
type Kind int

const (
	KindDigraph Kind = iota
	KindGraph
)

// String returns the DOT keyword for the kind.
func (k Kind) String() string {
	if k == KindGraph {
		return "graph"
	}
	return "digraph"
}

// edgeOp returns the edge operator syntax for the kind.
func (k Kind) edgeOp() string {
	if k == KindGraph {
		return "--"
	}
	return "->"
}
