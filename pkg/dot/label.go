package dot

import (
	"fmt"
	"strings"
	"unicode"
)

type textKind int

const (
	textPlain textKind = iota
	textEscaped
	textHTML
)

// Text is the text for a label on a graph, node or edge, together with
// the escaping discipline applied when it is rendered. The zero value
// is an empty plain label.
type Text struct {
	kind    textKind
	content string
}

// Plain returns a label that preserves the text directly as is.
// Occurrences of backslashes are escaped on render, and thus appear as
// backslashes in the displayed label.
func Plain(s string) Text { return Text{kind: textPlain, content: s} }

// Escaped returns a label using the Graphviz escString type:
// https://www.graphviz.org/docs/attr-types/escString/
//
// Occurrences of backslashes are not escaped; they are interpreted by
// Graphviz as initiating an escape sequence. Of particular interest:
// \n breaks a line (centering the line preceding it), \l left-justifies
// the preceding line and \r right-justifies it.
func Escaped(s string) Text { return Text{kind: textEscaped, content: s} }

// HTML returns a Graphviz HTML string label. The content is emitted
// exactly as given, between < and >. No escaping is performed; run
// untrusted text through [EscapeHTML] before embedding it in markup.
func HTML(s string) Text { return Text{kind: textHTML, content: s} }

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes s for use as character data inside an HTML label.
func EscapeHTML(s string) string { return htmlEscaper.Replace(s) }

// String renders the text as a DOT literal token, including the quotes
// or angle-bracket delimiters.
func (t Text) String() string {
	switch t.kind {
	case textEscaped:
		return `"` + escapeText(t.content, false) + `"`
	case textHTML:
		return "<" + t.content + ">"
	default:
		return `"` + escapeText(t.content, true) + `"`
	}
}

// escapeText applies character-by-character default escaping to s.
// With escBackslash false, backslashes pass through untouched so that
// Graphviz can interpret escString sequences; see [Escaped].
func escapeText(s string, escBackslash bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			if escBackslash {
				b.WriteString(`\\`)
			} else {
				b.WriteByte('\\')
			}
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			} else {
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		}
	}
	return b.String()
}

// preEscaped decomposes the text into content suitable for building an
// Escaped value that renders identically. The result obeys the law
// t.String() == Escaped(t.preEscaped()).String() for all t, and is
// idempotent: an Escaped value passes through unchanged.
func (t Text) preEscaped() string {
	if t.kind == textPlain && strings.ContainsRune(t.content, '\\') {
		return escapeText(t.content, true)
	}
	return t.content
}

// SuffixLine puts suffix on a line below this label, with a blank line
// separator. The result is always an Escaped label.
func (t Text) SuffixLine(suffix Text) Text {
	return Escaped(t.preEscaped() + `\n\n` + suffix.preEscaped())
}
