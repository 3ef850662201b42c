package document

import (
	"strings"
	"testing"
)

func TestComposeScalar(t *testing.T) {
	el := parseString(t, "42")
	got := string(Compose(el, ComposeOptions{}))
	if got != "42" {
		t.Errorf("Compose(42) = %q, want 42", got)
	}
}

func TestComposeQuotesTextThatNeedsIt(t *testing.T) {
	el := parseString(t, `"hello world"`)
	got := string(Compose(el, ComposeOptions{}))
	if got != `"hello world"` {
		t.Errorf("Compose = %q, want quoted", got)
	}
}

func TestComposeBareTextUnquotedWhenSafe(t *testing.T) {
	el := parseString(t, "hello")
	got := string(Compose(el, ComposeOptions{}))
	if got != "hello" {
		t.Errorf("Compose = %q, want bare hello", got)
	}
}

func TestComposeEmptySequenceAndMapping(t *testing.T) {
	el := parseString(t, "{ }")
	if got := string(Compose(el, ComposeOptions{})); got != "{ }" {
		t.Errorf("Compose(empty seq) = %q, want \"{ }\"", got)
	}
	el = parseString(t, "{ : }")
	if got := string(Compose(el, ComposeOptions{})); got != "{ : }" {
		t.Errorf("Compose(empty map) = %q, want \"{ : }\"", got)
	}
}

func TestComposeInline(t *testing.T) {
	el := parseString(t, "{ 1, 2, 3 }")
	got := string(Compose(el, ComposeOptions{Inline: true}))
	want := "{ 1, 2, 3 }"
	if got != want {
		t.Errorf("Compose(inline seq) = %q, want %q", got, want)
	}

	el = parseString(t, `{ a: 1, b: 2 }`)
	got = string(Compose(el, ComposeOptions{Inline: true}))
	want = "{ a: 1, b: 2 }"
	if got != want {
		t.Errorf("Compose(inline map) = %q, want %q", got, want)
	}
}

func TestComposeMultilineSequence(t *testing.T) {
	el := parseString(t, "{ 1, 2, 3 }")
	got := string(Compose(el, ComposeOptions{}))
	want := "{\n  1\n  2\n  3\n}"
	if got != want {
		t.Errorf("Compose(multiline seq) = %q, want %q", got, want)
	}
}

func TestComposeMultilineMapping(t *testing.T) {
	el := parseString(t, `{ a: 1, b: 2 }`)
	got := string(Compose(el, ComposeOptions{}))
	want := "{\n  a: 1\n  b: 2\n}"
	if got != want {
		t.Errorf("Compose(multiline map) = %q, want %q", got, want)
	}
}

func TestComposeSuppressOuterBraces(t *testing.T) {
	el := parseString(t, `{ a: 1, b: 2 }`)
	got := string(Compose(el, ComposeOptions{SuppressOuterBraces: true}))
	want := "a: 1\nb: 2\n"
	if got != want {
		t.Errorf("Compose(suppressed) = %q, want %q", got, want)
	}
}

func TestComposeSuppressOuterBracesRoundTrip(t *testing.T) {
	el := parseString(t, `{ a: 1, b: 2, c: { 1, 2 } }`)
	composed := Compose(el, ComposeOptions{SuppressOuterBraces: true})
	reparsed, err := Parse(composed, ParseOptions{})
	if err != nil {
		t.Fatalf("Parse(%s): %v", composed, err)
	}
	if !elementsEqual(el, reparsed) {
		t.Errorf("suppressed round trip not equivalent: %q", composed)
	}
}

func TestComposeCustomIndent(t *testing.T) {
	el := parseString(t, "{ 1, 2 }")
	got := string(Compose(el, ComposeOptions{Indent: "\t"}))
	want := "{\n\t1\n\t2\n}"
	if got != want {
		t.Errorf("Compose(custom indent) = %q, want %q", got, want)
	}
}

// TestComposeNestedReindent exercises the longest-common-tab-prefix
// reindentation path: a nested mapping value rendered multi-line must be
// shifted to its parent's indentation, not carry its own column-zero
// indentation into the middle of a line.
func TestComposeNestedReindent(t *testing.T) {
	el := parseString(t, `{ outer: { a: 1, b: 2 } }`)
	got := string(Compose(el, ComposeOptions{}))
	want := "{\n  outer: {\n    a: 1\n    b: 2\n  }\n}"
	if got != want {
		t.Errorf("Compose(nested mapping) =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeNestedSequenceOfMappings(t *testing.T) {
	el := parseString(t, `{ { a: 1 }, { b: 2 } }`)
	got := string(Compose(el, ComposeOptions{}))
	want := "{\n  {\n    a: 1\n  }\n  {\n    b: 2\n  }\n}"
	if got != want {
		t.Errorf("Compose(seq of maps) =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeDeeplyNested(t *testing.T) {
	el := parseString(t, `{ a: { b: { c: 1 } } }`)
	got := string(Compose(el, ComposeOptions{}))
	want := "{\n  a: {\n    b: {\n      c: 1\n    }\n  }\n}"
	if got != want {
		t.Errorf("Compose(deeply nested) =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeWideMappingKeysAlwaysQuoted(t *testing.T) {
	el, err := Parse([]byte(`{ "a": 1 }`), ParseOptions{WideKeys: true})
	if err != nil {
		t.Fatal(err)
	}
	got := string(Compose(el, ComposeOptions{}))
	if !strings.Contains(got, `"a"`) {
		t.Errorf("Compose(wide mapping) = %q, want quoted key", got)
	}
}

func TestComposeParseRoundTrip(t *testing.T) {
	sources := []string{
		`{ a: 1, b: { c: 2, d: { 1, 2, 3 } }, e: "hello world" }`,
		`{ 1, 2, { x: 1, y: 2 }, 4 }`,
		`{ : }`,
		`{ }`,
		`true`,
		`"quoted"`,
	}
	for _, src := range sources {
		el, err := Parse([]byte(src), ParseOptions{})
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		composed := Compose(el, ComposeOptions{})
		reparsed, err := Parse(composed, ParseOptions{})
		if err != nil {
			t.Fatalf("Parse(Compose(%q)) = %q: %v", src, composed, err)
		}
		if !elementsEqual(el, reparsed) {
			t.Errorf("round trip %q -> %q: not equivalent", src, composed)
		}
	}
}

// elementsEqual does a structural comparison ignoring source positions,
// since the composed text's positions differ from the original's.
func elementsEqual(a, b Element) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindSequence:
		as, _ := a.ToSequence()
		bs, _ := b.ToSequence()
		if as.Len() != bs.Len() {
			return false
		}
		for i := 0; i < as.Len(); i++ {
			if !elementsEqual(as.At(i), bs.At(i)) {
				return false
			}
		}
		return true
	case KindMapping:
		am, _ := a.ToMapping()
		bm, _ := b.ToMapping()
		if am.Len() != bm.Len() {
			return false
		}
		ae, be := am.Entries(), bm.Entries()
		for i := range ae {
			if ae[i].Key != be[i].Key || !elementsEqual(ae[i].Value, be[i].Value) {
				return false
			}
		}
		return true
	default:
		return a.ToText() == b.ToText()
	}
}
