package dot_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/dotgen/pkg/dot"
)

// deps is a tiny dependency graph: nodes are indices into names,
// edges are index pairs.
type deps struct {
	names []string
	edges [][2]int
}

func (d deps) GraphID() (dot.ID, error) { return dot.NewID("deps") }

func (d deps) NodeID(n int) (dot.ID, error) { return dot.NewID(d.names[n]) }

func (d deps) Nodes() []int {
	nodes := make([]int, len(d.names))
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

func (d deps) Edges() [][2]int      { return d.edges }
func (d deps) Source(e [2]int) int  { return e[0] }
func (d deps) Target(e [2]int) int  { return e[1] }

func ExampleRender() {
	g := deps{
		names: []string{"app", "parser", "lexer"},
		edges: [][2]int{{0, 1}, {1, 2}},
	}

	if err := dot.Render(os.Stdout, dot.Graph[int, [2]int](g)); err != nil {
		fmt.Println("render failed:", err)
	}
	// Output:
	// digraph deps {
	//     app[label="app"];
	//     parser[label="parser"];
	//     lexer[label="lexer"];
	//     app -> parser[label=""];
	//     parser -> lexer[label=""];
	// }
}

func ExampleRenderOpts() {
	g := deps{names: []string{"a", "b"}, edges: [][2]int{{0, 1}}}

	opts := dot.Options{Fontname: "Courier", NoEdgeLabels: true}
	if err := dot.RenderOpts(os.Stdout, dot.Graph[int, [2]int](g), opts); err != nil {
		fmt.Println("render failed:", err)
	}
	// Output:
	// digraph deps {
	//     graph[fontname="Courier"];
	//     node[fontname="Courier"];
	//     edge[fontname="Courier"];
	//     a[label="a"];
	//     b[label="b"];
	//     a -> b;
	// }
}

func ExampleText_SuffixLine() {
	title := dot.Plain("loop body")
	detail := dot.Escaped(`i := 0\li < n\l`)

	fmt.Println(title.SuffixLine(detail))
	// Output:
	// "loop body\n\ni := 0\li < n\l"
}
