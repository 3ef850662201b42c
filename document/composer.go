package document

import "strings"

// ComposeOptions controls how Compose renders an Element back to text.
// The zero value composes multi-line, with two-space indentation and
// outer braces kept on the top-level sequence/mapping.
type ComposeOptions struct {
	// Inline forces every sequence and mapping onto a single line
	// ("{ a, b, c }" instead of one member per line).
	Inline bool
	// SuppressOuterBraces omits the "{ }"/"{ : }" pair around the
	// top-level Element, if it is a sequence or mapping - useful for a
	// document format's outermost container, which callers often don't
	// want delimited at all.
	SuppressOuterBraces bool
	// Indent is the per-level indentation string used in multi-line mode.
	// Defaults to two spaces if empty.
	Indent string
}

func (o ComposeOptions) indent() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}

// Compose renders e back to document text.
func Compose(e Element, opts ComposeOptions) []byte {
	var buf []byte
	buf = composeElement(buf, e, opts, true)
	return buf
}

func composeElement(dst []byte, e Element, opts ComposeOptions, top bool) []byte {
	switch e.Kind() {
	case KindSequence:
		return composeSequence(dst, e.seq, opts, top)
	case KindMapping:
		return composeMapping(dst, e.mp, opts, top)
	default:
		return composeScalar(dst, e)
	}
}

// composeNested renders a sequence/mapping member that isn't the top-level
// element: composeElement builds it in isolation (as if it were its own
// top-level document, starting at column zero), and the result is spliced
// into dst at the caller's indentation by stripping whatever common tab
// prefix its lines share and re-applying indent in its place. This is what
// lets one composeSequence/composeMapping body handle any nesting depth
// without threading a depth counter through every call.
func composeNested(dst []byte, e Element, opts ComposeOptions, indent string) []byte {
	child := composeElement(nil, e, opts, false)
	if !opts.Inline && bytesContainNewline(child) {
		lines := strings.Split(string(child), "\n")
		lines = reindentBlock(lines, indent)
		return append(dst, strings.Join(lines, "\n")...)
	}
	dst = append(dst, indent...)
	return append(dst, child...)
}

func bytesContainNewline(b []byte) bool {
	for _, c := range b {
		if c == '\n' {
			return true
		}
	}
	return false
}

func composeScalar(dst []byte, e Element) []byte {
	if e.Kind() == KindText && needsQuoting(e.raw) {
		return AppendQuotedText(dst, e.raw)
	}
	return append(dst, e.raw...)
}

// needsQuoting reports whether raw, written bare, would misparse: empty
// text, text starting with a structural character, text that would
// reclassify as a different Kind (e.g. the text "true" meaning the string
// "true"), or text containing whitespace/comment-opening/structural bytes.
func needsQuoting(raw string) bool {
	if raw == "" {
		return true
	}
	if classifyScalar(raw) != KindText {
		return true
	}
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if isSpace(b) || isStructural(b) || b == '"' || b == '\'' || b == '\\' {
			return true
		}
		if b == '/' && i+1 < len(raw) && (raw[i+1] == '/' || raw[i+1] == '*') {
			return true
		}
	}
	return false
}

func composeSequence(dst []byte, seq Sequence, opts ComposeOptions, top bool) []byte {
	suppress := top && opts.SuppressOuterBraces
	if len(seq) == 0 {
		if suppress {
			return dst
		}
		return append(dst, '{', ' ', '}')
	}
	if opts.Inline {
		dst = append(dst, '{', ' ')
		for i, el := range seq {
			if i > 0 {
				dst = append(dst, ',', ' ')
			}
			dst = composeElement(dst, el, opts, false)
		}
		return append(dst, ' ', '}')
	}

	if !suppress {
		dst = append(dst, '{', '\n')
	}
	indent := ""
	if !suppress {
		indent = opts.indent()
	}
	for _, el := range seq {
		dst = composeNested(dst, el, opts, indent)
		dst = append(dst, '\n')
	}
	if !suppress {
		dst = append(dst, '}')
	}
	return dst
}

func composeMapping(dst []byte, m Mapping, opts ComposeOptions, top bool) []byte {
	suppress := top && opts.SuppressOuterBraces
	if len(m.entries) == 0 {
		if suppress {
			return dst
		}
		return append(dst, '{', ' ', ':', ' ', '}')
	}
	if opts.Inline {
		dst = append(dst, '{', ' ')
		for i, e := range m.entries {
			if i > 0 {
				dst = append(dst, ',', ' ')
			}
			dst = composeKey(dst, e.key, m.wide)
			dst = append(dst, ':', ' ')
			dst = composeElement(dst, e.value, opts, false)
		}
		return append(dst, ' ', '}')
	}

	if !suppress {
		dst = append(dst, '{', '\n')
	}
	indent := ""
	if !suppress {
		indent = opts.indent()
	}
	for _, e := range m.entries {
		dst = append(dst, indent...)
		dst = composeKey(dst, e.key, m.wide)
		dst = append(dst, ':', ' ')
		dst = composeKeyedValue(dst, e.value, opts, indent)
		dst = append(dst, '\n')
	}
	if !suppress {
		dst = append(dst, '}')
	}
	return dst
}

// composeKeyedValue renders a mapping entry's value, which continues on the
// same line as its "key: " prefix rather than starting a fresh indented
// line the way a sequence member does.
func composeKeyedValue(dst []byte, e Element, opts ComposeOptions, indent string) []byte {
	child := composeElement(nil, e, opts, false)
	if opts.Inline || !bytesContainNewline(child) {
		return append(dst, child...)
	}
	lines := strings.Split(string(child), "\n")
	lines = reindentBlock(lines, indent)
	lines[0] = strings.TrimPrefix(lines[0], indent)
	return append(dst, strings.Join(lines, "\n")...)
}

func composeKey(dst []byte, key string, wide bool) []byte {
	if wide || needsQuoting(key) {
		if wide {
			return AppendQuotedWideText(dst, key)
		}
		return AppendQuotedText(dst, key)
	}
	return append(dst, key...)
}

// reindentBlock recomputes a block of already-indented lines against a new
// base indentation, by first stripping the longest common leading-tab (or
// leading-space) prefix shared by every non-blank line, then prepending
// newIndent. This is what lets a value composed once be spliced back into
// a document at a different nesting depth without carrying its old
// indentation along as content.
func reindentBlock(lines []string, newIndent string) []string {
	prefix := commonIndentPrefix(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		out[i] = newIndent + strings.TrimPrefix(line, prefix)
	}
	return out
}

func commonIndentPrefix(lines []string) string {
	var prefix string
	set := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !set {
			prefix = lead
			set = true
			continue
		}
		prefix = commonPrefix(prefix, lead)
	}
	return prefix
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
