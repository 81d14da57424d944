package dot

// Style is the style for a node, edge or subgraph. See
// https://www.graphviz.org/doc/info/attrs.html#k:style for
// descriptions; note that some styles are not valid for edges.
//
// StyleNone is the zero value. It renders as the empty string and is
// treated as absent: the engine never emits a style attribute for it.
type Style int

const (
	StyleNone Style = iota
	StyleSolid
	StyleDashed
	StyleDotted
	StyleBold
	StyleRounded
	StyleDiagonals
	StyleFilled
	StyleStriped
	StyleWedged
)

var styleNames = [...]string{
	StyleNone:      "",
	StyleSolid:     "solid",
	StyleDashed:    "dashed",
	StyleDotted:    "dotted",
	StyleBold:      "bold",
	StyleRounded:   "rounded",
	StyleDiagonals: "diagonals",
	StyleFilled:    "filled",
	StyleStriped:   "striped",
	StyleWedged:    "wedged",
}

// String returns the DOT attribute value for the style, or the empty
// string for StyleNone.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return ""
	}
	return styleNames[s]
}
