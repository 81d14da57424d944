package dot

import "testing"

func TestTextString(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want string
	}{
		{"PlainEmpty", Plain(""), `""`},
		{"PlainSimple", Plain("hello"), `"hello"`},
		{"PlainQuote", Plain(`say "hi"`), `"say \"hi\""`},
		{"PlainBackslash", Plain(`a\b`), `"a\\b"`},
		{"PlainNewline", Plain("a\nb"), `"a\nb"`},
		{"PlainTab", Plain("a\tb"), `"a\tb"`},
		{"PlainControl", Plain("a\x01b"), "\"a\\u0001b\""},
		{"EscapedKeepsBackslash", Escaped(`two\llines\l`), `"two\llines\l"`},
		{"EscapedQuote", Escaped(`a "q" \n`), `"a \"q\" \n"`},
		{"HTMLVerbatim", HTML(`<b>bold & "raw"</b>`), `<<b>bold & "raw"</b>>`},
		{"ZeroValue", Text{}, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTextSuffixLine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Text
		want   string // rendered result, including quotes
	}{
		{"PlainPlain", Plain("hello"), Plain("world"), `"hello\n\nworld"`},
		{"PlainEscaped", Plain("hi"), Escaped(`lines\l`), `"hi\n\nlines\l"`},
		{"PlainWithBackslash", Plain(`a\b`), Plain("c"), `"a\\b\n\nc"`},
		{"HTMLPassesThrough", HTML("<i>x</i>"), Plain("y"), `"<i>x</i>\n\ny"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.SuffixLine(tt.b)
			if got.kind != textEscaped {
				t.Errorf("SuffixLine() kind = %v, want escaped", got.kind)
			}
			if s := got.String(); s != tt.want {
				t.Errorf("SuffixLine().String() = %s, want %s", s, tt.want)
			}
		})
	}
}

// TestPreEscapedLaw checks render(t) == render(Escaped(t.preEscaped()))
// for every variant, and that normalization is idempotent.
func TestPreEscapedLaw(t *testing.T) {
	quoted := []Text{
		Plain("plain"),
		Plain(`with\backslash`),
		Plain(`with "quotes"`),
		Escaped(`esc\lstring\l`),
	}
	for _, text := range quoted {
		if got, want := Escaped(text.preEscaped()).String(), text.String(); got != want {
			t.Errorf("law broken for %#v: %s != %s", text, got, want)
		}
	}

	// HTML renders with different delimiters, so only the content law
	// applies: it must pass through unchanged.
	if got := HTML("<b>x</b>").preEscaped(); got != "<b>x</b>" {
		t.Errorf("HTML preEscaped = %q, want verbatim content", got)
	}

	// Idempotence.
	for _, text := range quoted {
		once := text.preEscaped()
		if twice := Escaped(once).preEscaped(); twice != once {
			t.Errorf("normalize not idempotent: %q != %q", twice, once)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a & b", "a &amp; b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{`x < y && y > "z"`, "x &lt; y &amp;&amp; y &gt; &quot;z&quot;"},
		{"&amp;", "&amp;amp;"}, // already-escaped text is escaped again
	}

	for _, tt := range tests {
		if got := EscapeHTML(tt.input); got != tt.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEscapeHTMLInLabel(t *testing.T) {
	label := HTML("<b>" + EscapeHTML(`1 < 2 & "so on"`) + "</b>")
	want := `<<b>1 &lt; 2 &amp; &quot;so on&quot;</b>>`
	if got := label.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
