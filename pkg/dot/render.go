package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Options controls what [RenderOpts] emits. Each field is
// independently togglable; the zero value renders everything.
//
// The suppression flags strip decoration only - identifiers and
// structural syntax always remain. Fontname and DarkTheme inject a
// global graph/node/edge attribute block right after the opening
// brace; the block is emitted only when at least one of them is set.
type Options struct {
	NoEdgeLabels bool
	NoNodeLabels bool
	NoEdgeStyles bool
	NoEdgeColors bool
	NoNodeStyles bool
	NoNodeColors bool
	NoArrows     bool

	// Fontname sets the font for the graph and all nodes and edges.
	// Empty leaves the Graphviz default.
	Fontname string

	// DarkTheme renders white-on-black: black background, white
	// foreground for graph, node and edge defaults.
	DarkTheme bool
}

// Render writes g to w in DOT syntax with default options.
func Render[N, E any](w io.Writer, g Graph[N, E]) error {
	return RenderOpts(w, g, Options{})
}

// RenderOpts writes g to w in DOT syntax. It walks the graph exactly
// once - subgraphs, then nodes, then edges, in the order the contract
// yields them - and streams output incrementally.
//
// Rendering fails fast: the first sink write failure or identifier
// error aborts and is returned. Bytes already written are not rolled
// back; callers must treat the result as all-or-nothing at the
// logical level.
func RenderOpts[N, E any](w io.Writer, g Graph[N, E], opts Options) error {
	kind := KindDigraph
	if k, ok := any(g).(Kinder); ok {
		kind = k.Kind()
	}

	id, err := g.GraphID()
	if err != nil {
		return err
	}
	if err := emitf(w, "%s %s {\n", kind, id); err != nil {
		return err
	}
	if err := emitGlobalAttrs(w, opts); err != nil {
		return err
	}
	if err := emitSubgraphs(w, g, opts); err != nil {
		return err
	}
	if err := emitNodes(w, g, opts); err != nil {
		return err
	}
	if err := emitEdges(w, g, kind, opts); err != nil {
		return err
	}
	return emitf(w, "}\n")
}

func emitf(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

func emitGlobalAttrs(w io.Writer, opts Options) error {
	var graphAttrs, contentAttrs []string
	if opts.Fontname != "" {
		font := fmt.Sprintf("fontname=%q", opts.Fontname)
		graphAttrs = append(graphAttrs, font)
		contentAttrs = append(contentAttrs, font)
	}
	if opts.DarkTheme {
		graphAttrs = append(graphAttrs, `bgcolor="black"`, `fontcolor="white"`)
		contentAttrs = append(contentAttrs, `color="white"`, `fontcolor="white"`)
	}
	if len(graphAttrs) == 0 && len(contentAttrs) == 0 {
		return nil
	}

	if err := emitf(w, "    graph[%s];\n", strings.Join(graphAttrs, " ")); err != nil {
		return err
	}
	content := strings.Join(contentAttrs, " ")
	if err := emitf(w, "    node[%s];\n", content); err != nil {
		return err
	}
	return emitf(w, "    edge[%s];\n", content)
}

// emitSubgraphs writes one block per subgraph. Subgraph decoration is
// gated by the node-side suppression flags, since subgraphs decorate
// node groupings.
func emitSubgraphs[N, E any](w io.Writer, g Graph[N, E], opts Options) error {
	sub, ok := any(g).(Subgrapher[N])
	if !ok {
		return nil
	}

	for _, sg := range sub.Subgraphs() {
		if sg.ID != (ID{}) {
			if err := emitf(w, "    subgraph %s {\n", sg.ID); err != nil {
				return err
			}
		} else {
			if err := emitf(w, "    subgraph {\n"); err != nil {
				return err
			}
		}

		if !opts.NoNodeLabels {
			if err := emitf(w, "        label=%s;\n", sg.Label); err != nil {
				return err
			}
		}
		if !opts.NoNodeStyles && sg.Style != StyleNone {
			if err := emitf(w, "        style=%q;\n", sg.Style); err != nil {
				return err
			}
		}
		if !opts.NoNodeColors && sg.Color != nil {
			if err := emitf(w, "        color=%s;\n", *sg.Color); err != nil {
				return err
			}
		}
		if sg.Shape != nil {
			if err := emitf(w, "        shape=%s;\n", *sg.Shape); err != nil {
				return err
			}
		}
		if err := emitf(w, "\n"); err != nil {
			return err
		}

		for _, n := range sg.Nodes {
			id, err := g.NodeID(n)
			if err != nil {
				return err
			}
			if err := emitf(w, "        %s;\n", id); err != nil {
				return err
			}
		}
		if err := emitf(w, "    }\n\n"); err != nil {
			return err
		}
	}
	return nil
}

func emitNodes[N, E any](w io.Writer, g Graph[N, E], opts Options) error {
	labeller, _ := any(g).(NodeLabeller[N])
	styler, _ := any(g).(NodeStyler[N])
	colorer, _ := any(g).(NodeColorer[N])
	shaper, _ := any(g).(NodeShaper[N])

	var line bytes.Buffer
	for _, n := range g.Nodes() {
		line.Reset()

		id, err := g.NodeID(n)
		if err != nil {
			return err
		}
		line.WriteString("    ")
		line.WriteString(id.String())

		if !opts.NoNodeLabels {
			label := Plain(id.String())
			if labeller != nil {
				label = labeller.NodeLabel(n)
			}
			fmt.Fprintf(&line, "[label=%s]", label)
		}
		if !opts.NoNodeStyles && styler != nil {
			if style := styler.NodeStyle(n); style != StyleNone {
				fmt.Fprintf(&line, "[style=%q]", style)
			}
		}
		if !opts.NoNodeColors && colorer != nil {
			if color, ok := colorer.NodeColor(n); ok {
				fmt.Fprintf(&line, "[color=%s]", color)
			}
		}
		if shaper != nil {
			if shape, ok := shaper.NodeShape(n); ok {
				fmt.Fprintf(&line, "[shape=%s]", shape)
			}
		}

		line.WriteString(";\n")
		if _, err := w.Write(line.Bytes()); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
	}
	return nil
}

func emitEdges[N, E any](w io.Writer, g Graph[N, E], kind Kind, opts Options) error {
	labeller, _ := any(g).(EdgeLabeller[E])
	styler, _ := any(g).(EdgeStyler[E])
	colorer, _ := any(g).(EdgeColorer[E])
	arrower, _ := any(g).(EdgeArrower[E])

	var line bytes.Buffer
	for _, e := range g.Edges() {
		line.Reset()

		sourceID, err := g.NodeID(g.Source(e))
		if err != nil {
			return err
		}
		targetID, err := g.NodeID(g.Target(e))
		if err != nil {
			return err
		}
		fmt.Fprintf(&line, "    %s %s %s", sourceID, kind.edgeOp(), targetID)

		if !opts.NoEdgeLabels {
			var label Text
			if labeller != nil {
				label = labeller.EdgeLabel(e)
			}
			fmt.Fprintf(&line, "[label=%s]", label)
		}
		if !opts.NoEdgeStyles && styler != nil {
			if style := styler.EdgeStyle(e); style != StyleNone {
				fmt.Fprintf(&line, "[style=%q]", style)
			}
		}
		if !opts.NoEdgeColors && colorer != nil {
			if color, ok := colorer.EdgeColor(e); ok {
				fmt.Fprintf(&line, "[color=%s]", color)
			}
		}
		if !opts.NoArrows && arrower != nil {
			start := arrower.EdgeStartArrow(e)
			end := arrower.EdgeEndArrow(e)
			if !start.IsDefault() || !end.IsDefault() {
				line.WriteByte('[')
				if !end.IsDefault() {
					fmt.Fprintf(&line, "arrowhead=%q", end)
				}
				if !start.IsDefault() {
					fmt.Fprintf(&line, ` dir="both" arrowtail=%q`, start)
				}
				line.WriteByte(']')
			}
		}

		line.WriteString(";\n")
		if _, err := w.Write(line.Bytes()); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
	}
	return nil
}
