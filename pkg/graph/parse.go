package graph

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dotgen/pkg/dot"
)

// maxArrowShapes is the Graphviz limit on shapes per arrow.
const maxArrowShapes = 4

// ParseStyle maps a document style string to its dot.Style. The empty
// string and "none" both mean no style.
func ParseStyle(s string) (dot.Style, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return dot.StyleNone, nil
	case "solid":
		return dot.StyleSolid, nil
	case "dashed":
		return dot.StyleDashed, nil
	case "dotted":
		return dot.StyleDotted, nil
	case "bold":
		return dot.StyleBold, nil
	case "rounded":
		return dot.StyleRounded, nil
	case "diagonals":
		return dot.StyleDiagonals, nil
	case "filled":
		return dot.StyleFilled, nil
	case "striped":
		return dot.StyleStriped, nil
	case "wedged":
		return dot.StyleWedged, nil
	default:
		return dot.StyleNone, fmt.Errorf("unknown style %q", s)
	}
}

// ParseShape parses one arrow shape token per the Graphviz arrowType
// grammar: an optional "o" (open fill), an optional "l" or "r" (clip
// side), then the primitive shape name. Modifiers a shape does not
// support are rejected: "dot" takes only the fill, "crow", "curve",
// "tee" and "vee" take only the side, "none" takes neither.
func ParseShape(token string) (dot.Shape, error) {
	rest := token

	fill := dot.FillFilled
	if strings.HasPrefix(rest, "o") {
		fill = dot.FillOpen
		rest = rest[1:]
	}

	side := dot.SideBoth
	switch {
	case strings.HasPrefix(rest, "l"):
		side = dot.SideLeft
		rest = rest[1:]
	case strings.HasPrefix(rest, "r"):
		side = dot.SideRight
		rest = rest[1:]
	}

	switch rest {
	case "normal":
		return dot.ShapeNormal(fill, side), nil
	case "box":
		return dot.ShapeBox(fill, side), nil
	case "icurve":
		return dot.ShapeICurve(fill, side), nil
	case "diamond":
		return dot.ShapeDiamond(fill, side), nil
	case "inv":
		return dot.ShapeInv(fill, side), nil
	case "crow", "curve", "tee", "vee":
		if fill == dot.FillOpen {
			return dot.Shape{}, fmt.Errorf("arrow shape %q does not take the open modifier", token)
		}
		switch rest {
		case "crow":
			return dot.ShapeCrow(side), nil
		case "curve":
			return dot.ShapeCurve(side), nil
		case "tee":
			return dot.ShapeTee(side), nil
		default:
			return dot.ShapeVee(side), nil
		}
	case "dot":
		if side != dot.SideBoth {
			return dot.Shape{}, fmt.Errorf("arrow shape %q does not take a side modifier", token)
		}
		return dot.ShapeDot(fill), nil
	case "none":
		if fill == dot.FillOpen || side != dot.SideBoth {
			return dot.Shape{}, fmt.Errorf("arrow shape %q does not take modifiers", token)
		}
		return dot.ShapeNone(), nil
	default:
		return dot.Shape{}, fmt.Errorf("unknown arrow shape %q", token)
	}
}

// ParseArrow parses a shape token sequence into a dot.Arrow. An empty
// sequence yields the default arrow. At most four shapes are allowed,
// matching the Graphviz limit.
func ParseArrow(tokens []string) (dot.Arrow, error) {
	if len(tokens) == 0 {
		return dot.Arrow{}, nil
	}
	if len(tokens) > maxArrowShapes {
		return dot.Arrow{}, fmt.Errorf("arrow has %d shapes, maximum is %d", len(tokens), maxArrowShapes)
	}
	shapes := make([]dot.Shape, 0, len(tokens))
	for _, tok := range tokens {
		shape, err := ParseShape(tok)
		if err != nil {
			return dot.Arrow{}, err
		}
		shapes = append(shapes, shape)
	}
	return dot.ArrowFrom(shapes...), nil
}
