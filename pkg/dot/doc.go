// Package dot serializes client-defined graphs into the Graphviz DOT
// language.
//
// The package is a pure producer: a client graph type satisfies the
// [Graph] contract (plus any of the optional capability interfaces),
// and [Render] or [RenderOpts] walks it once and streams correctly
// escaped, attribute-decorated DOT text into an io.Writer. There is no
// DOT parser, no layout engine, and no buffering of the whole document.
//
// # Contracts
//
// [Graph] is the minimal contract: identifiers for the graph and its
// nodes, plus node/edge enumeration and edge endpoint resolution. Node
// and edge handles are opaque type parameters; the engine never
// compares them, it only resolves them through the contract methods.
//
// Everything else is optional and discovered by type assertion:
// [Kinder], [NodeLabeller], [NodeStyler], [NodeColorer], [NodeShaper],
// [EdgeLabeller], [EdgeStyler], [EdgeColorer], [EdgeArrower] and
// [Subgrapher]. A graph that implements none of them renders with the
// documented defaults: every node labelled with its own identifier,
// no styles, no colors, default arrowheads, a directed graph.
//
// # Example
//
//	type ring struct{ n int }
//
//	func (r ring) GraphID() (dot.ID, error)      { return dot.NewID("ring") }
//	func (r ring) NodeID(n int) (dot.ID, error)  { return dot.NewID(fmt.Sprintf("N%d", n)) }
//	func (r ring) Nodes() []int                  { ... }
//	func (r ring) Edges() [][2]int               { ... }
//	func (r ring) Source(e [2]int) int           { return e[0] }
//	func (r ring) Target(e [2]int) int           { return e[1] }
//
//	err := dot.Render(os.Stdout, ring{n: 3})
package dot
