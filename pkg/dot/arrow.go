package dot

import (
	"slices"
	"strings"
)

// Fill is an arrow shape modifier that determines whether the shape is
// drawn filled or as an outline. FillFilled is the zero value and
// renders as the empty string; FillOpen renders as the "o" prefix.
type Fill int

const (
	FillFilled Fill = iota
	FillOpen
)

// String returns the DOT modifier prefix for the fill.
func (f Fill) String() string {
	if f == FillOpen {
		return "o"
	}
	return ""
}

// Side is an arrow shape modifier that determines whether the shape is
// clipped to one side of the edge. SideLeft means only the left side
// is visible. SideBoth is the zero value, renders as the empty string
// and leaves the shape unclipped.
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// String returns the DOT modifier prefix for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "l"
	case SideRight:
		return "r"
	default:
		return ""
	}
}

type shapeKind int

const (
	shapeNone shapeKind = iota
	shapeNormal
	shapeBox
	shapeCrow
	shapeCurve
	shapeICurve
	shapeDiamond
	shapeDot
	shapeInv
	shapeTee
	shapeVee
)

var shapeNames = [...]string{
	shapeNone:    "none",
	shapeNormal:  "normal",
	shapeBox:     "box",
	shapeCrow:    "crow",
	shapeCurve:   "curve",
	shapeICurve:  "icurve",
	shapeDiamond: "diamond",
	shapeDot:     "dot",
	shapeInv:     "inv",
	shapeTee:     "tee",
	shapeVee:     "vee",
}

// Shape is a single arrowhead component, one of the primitive shapes
// defined in https://www.graphviz.org/doc/info/arrows.html together
// with the modifiers it supports. The zero value is ShapeNone.
//
// Each constructor takes exactly the modifiers its shape accepts:
// fill and side for Normal, Box, ICurve, Diamond and Inv; side only
// for Crow, Curve, Tee and Vee; fill only for Dot; none for NoArrow.
type Shape struct {
	kind shapeKind
	fill Fill
	side Side
}

// ShapeNone returns the explicit no-arrow shape, rendered as the
// literal "none".
func ShapeNone() Shape { return Shape{} }

// ShapeNormal returns an arrow ending in a triangle.
// Note: the official documentation omits it, but normal supports both
// fill and side clipping.
func ShapeNormal(fill Fill, side Side) Shape {
	return Shape{kind: shapeNormal, fill: fill, side: side}
}

// ShapeBox returns an arrow ending in a small square box.
func ShapeBox(fill Fill, side Side) Shape {
	return Shape{kind: shapeBox, fill: fill, side: side}
}

// ShapeCrow returns an arrow ending in three branching lines, also
// called a crow's foot.
func ShapeCrow(side Side) Shape { return Shape{kind: shapeCrow, side: side} }

// ShapeCurve returns an arrow ending in a curve.
func ShapeCurve(side Side) Shape { return Shape{kind: shapeCurve, side: side} }

// ShapeICurve returns an arrow ending in an inverted curve.
func ShapeICurve(fill Fill, side Side) Shape {
	return Shape{kind: shapeICurve, fill: fill, side: side}
}

// ShapeDiamond returns an arrow ending in a diamond.
func ShapeDiamond(fill Fill, side Side) Shape {
	return Shape{kind: shapeDiamond, fill: fill, side: side}
}

// ShapeDot returns an arrow ending in a circle. Dot supports only the
// fill modifier.
func ShapeDot(fill Fill) Shape { return Shape{kind: shapeDot, fill: fill} }

// ShapeInv returns an arrow ending in an inverted triangle.
func ShapeInv(fill Fill, side Side) Shape {
	return Shape{kind: shapeInv, fill: fill, side: side}
}

// ShapeTee returns an arrow ending with a T.
func ShapeTee(side Side) Shape { return Shape{kind: shapeTee, side: side} }

// ShapeVee returns an arrow ending with a V.
func ShapeVee(side Side) Shape { return Shape{kind: shapeVee, side: side} }

// String renders the shape with its modifiers as the DOT arrow token:
// fill prefix, then side prefix if clipped, then the shape name.
func (s Shape) String() string {
	var b strings.Builder
	switch s.kind {
	case shapeNormal, shapeBox, shapeICurve, shapeDiamond, shapeInv:
		b.WriteString(s.fill.String())
		b.WriteString(s.side.String())
	case shapeDot:
		b.WriteString(s.fill.String())
	case shapeCrow, shapeCurve, shapeTee, shapeVee:
		b.WriteString(s.side.String())
	}
	b.WriteString(shapeNames[s.kind])
	return b.String()
}

// Arrow describes the arrow drawn at one end of an edge as an ordered
// sequence of shapes, outermost first. Graphviz draws at most four.
//
// The zero value is the default (unset) arrow: the engine emits no
// arrowhead/arrowtail attribute for it. This is distinct from
// [ArrowNone], which is a one-shape sequence that explicitly renders
// "none" - default-ness means the sequence is empty, not that it
// renders to an empty string.
type Arrow struct {
	shapes []Shape
}

// ArrowDefault returns the default arrow, equivalent to the zero value.
func ArrowDefault() Arrow { return Arrow{} }

// ArrowNone returns an arrow that explicitly suppresses the arrowhead,
// rendered as the literal "none".
func ArrowNone() Arrow { return Arrow{shapes: []Shape{ShapeNone()}} }

// ArrowNormal returns a regular triangle arrow without modifiers.
func ArrowNormal() Arrow {
	return Arrow{shapes: []Shape{ShapeNormal(FillFilled, SideBoth)}}
}

// ArrowFrom builds an arrow from the given shape sequence. The slice
// is copied; an empty call yields the default arrow.
func ArrowFrom(shapes ...Shape) Arrow {
	return Arrow{shapes: slices.Clone(shapes)}
}

// IsDefault reports whether this is the default (unset) arrow.
func (a Arrow) IsDefault() bool { return len(a.shapes) == 0 }

// String renders the arrow as the concatenation of its shape tokens.
func (a Arrow) String() string {
	var b strings.Builder
	for _, s := range a.shapes {
		b.WriteString(s.String())
	}
	return b.String()
}
