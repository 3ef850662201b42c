package document

import "fmt"

// ParseError reports a failure to parse a document. Unlike
// numbstrict.ParseError (which only ever knows a byte offset into the text
// it was given), ParseError always carries the parse's source name and the
// 1-based line/column the problem was found at, since a document is
// usually read from a named file or config blob a person will want to go
// look at.
type ParseError struct {
	Source  string
	Offset  int
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func newParseError(src *source, offset int, message string) *ParseError {
	line, col := src.lineAndColumn(offset)
	return &ParseError{Source: src.name, Offset: offset, Line: line, Column: col, Message: message}
}

// ParseOptions controls how Parse reads a document. The zero value is
// ready to use: byte-string (bare-when-possible) mapping keys, no source
// name attached to errors.
type ParseOptions struct {
	// SourceName is attached to the source and reported in ParseError and
	// Element.SourceName, e.g. a file path.
	SourceName string
	// WideKeys makes Parse require every mapping key to be a quoted
	// string (the "wide-string" key flavor - see Mapping.Wide) instead of
	// accepting bare identifiers.
	WideKeys bool
}

// Parser holds the state of one in-progress parse. Most callers only need
// the Parse function; Parser is exposed for callers that want to parse
// more than one top-level document out of a single buffer, checking AtEOF
// between them.
type Parser struct {
	src  *source
	cur  *cursor
	opts ParseOptions
}

// NewParser creates a Parser over data. name is attached to the source for
// error reporting (see ParseOptions.SourceName) and Element.SourceName.
func NewParser(data []byte, opts ParseOptions) *Parser {
	src := &source{name: opts.SourceName, data: data}
	return &Parser{src: src, cur: newCursor(src), opts: opts}
}

// AtEOF reports whether every remaining byte of the buffer is whitespace
// or a comment - i.e. whether a prior ParseElement call consumed the last
// real content, and a caller streaming multiple top-level documents out of
// one buffer can stop.
func (p *Parser) AtEOF() bool {
	save := p.cur.pos
	_ = p.cur.skipSpaceAndComments()
	atEOF := p.cur.atEOF()
	p.cur.pos = save
	return atEOF
}

// ParseElement parses one top-level value (a scalar, a sequence, or a
// mapping) starting at the parser's current position, leaving the cursor
// just past it.
func (p *Parser) ParseElement() (Element, error) {
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return Element{}, err
	}
	if p.cur.atEOF() {
		return Element{}, newParseError(p.src, p.cur.pos, "unexpected end of document")
	}
	b, _ := p.cur.peek()
	if b == '{' {
		return p.parseBraced()
	}
	return p.parseScalar()
}

func (p *Parser) parseScalar() (Element, error) {
	offset := p.cur.pos
	b, _ := p.cur.peek()
	var raw string
	if b == '"' || b == '\'' {
		quoted, err := p.cur.scanQuoted()
		if err != nil {
			return Element{}, err
		}
		unquoted, err := Unquote(quoted)
		if err != nil {
			return Element{}, newParseError(p.src, offset, err.Error())
		}
		return Element{src: p.src, offset: offset, raw: unquoted, kind: KindText}, nil
	}
	raw = p.cur.scanBareToken()
	if raw == "" {
		return Element{}, newParseError(p.src, offset, "expected a value")
	}
	return Element{src: p.src, offset: offset, raw: raw, kind: classifyScalar(raw)}, nil
}

// parseBraced parses `{ ... }`: either an explicit empty mapping `{ : }`,
// an explicit empty sequence `{ }`, a sequence of comma/newline-separated
// elements, or a mapping of comma/newline-separated "key: value" pairs.
// Which of the last two it is can only be known after parsing the first
// member: if it's immediately followed by ':', the whole braced form is a
// mapping and that first member's text is reinterpreted as a key.
func (p *Parser) parseBraced() (Element, error) {
	offset := p.cur.pos
	p.cur.advance() // '{'
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return Element{}, err
	}

	if b, ok := p.cur.peek(); ok && b == ':' {
		p.cur.advance()
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if err := p.expectClose(offset); err != nil {
			return Element{}, err
		}
		return Element{src: p.src, offset: offset, kind: KindMapping, mp: Mapping{wide: p.opts.WideKeys}}, nil
	}
	if b, ok := p.cur.peek(); ok && b == '}' {
		p.cur.advance()
		return Element{src: p.src, offset: offset, kind: KindSequence, seq: Sequence{}}, nil
	}

	first, firstKeyText, isQuotedKey, err := p.parseMemberOrKey()
	if err != nil {
		return Element{}, err
	}
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return Element{}, err
	}
	if b, ok := p.cur.peek(); ok && b == ':' {
		if p.opts.WideKeys && !isQuotedKey {
			return Element{}, newParseError(p.src, first.offset, "mapping key must be quoted")
		}
		p.cur.advance()
		return p.parseMappingBody(offset, firstKeyText)
	}
	return p.parseSequenceBody(offset, first)
}

// parseMemberOrKey parses one element that might turn out to be a
// sequence entry or a mapping key, returning both the parsed Element and
// the text to use if it turns out to be a key.
func (p *Parser) parseMemberOrKey() (Element, string, bool, error) {
	offset := p.cur.pos
	b, _ := p.cur.peek()
	if b == '"' || b == '\'' {
		quoted, err := p.cur.scanQuoted()
		if err != nil {
			return Element{}, "", false, err
		}
		unquoted, err := Unquote(quoted)
		if err != nil {
			return Element{}, "", false, newParseError(p.src, offset, err.Error())
		}
		el := Element{src: p.src, offset: offset, raw: unquoted, kind: KindText}
		return el, unquoted, true, nil
	}
	raw := p.cur.scanBareToken()
	if raw == "" {
		return Element{}, "", false, newParseError(p.src, offset, "expected a value")
	}
	el := Element{src: p.src, offset: offset, raw: raw, kind: classifyScalar(raw)}
	return el, raw, false, nil
}

func (p *Parser) parseMappingBody(offset int, firstKey string) (Element, error) {
	m := Mapping{wide: p.opts.WideKeys}
	seen := map[string]bool{firstKey: true}
	for {
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		val, err := p.ParseElement()
		if err != nil {
			return Element{}, err
		}
		m.entries = append(m.entries, entry{key: firstKey, value: val})

		sepOffset := p.cur.pos
		sawComma, err := p.cur.skipSeparatorReportComma()
		if err != nil {
			return Element{}, err
		}
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if b, ok := p.cur.peek(); ok && b == '}' {
			if sawComma {
				return Element{}, newParseError(p.src, sepOffset, "trailing comma not allowed in mapping")
			}
			p.cur.advance()
			return Element{src: p.src, offset: offset, kind: KindMapping, mp: m}, nil
		}

		keyEl, keyText, isQuotedKey, err := p.parseMemberOrKey()
		if err != nil {
			return Element{}, err
		}
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if p.opts.WideKeys && !isQuotedKey {
			return Element{}, newParseError(p.src, keyEl.offset, "mapping key must be quoted")
		}
		b, ok := p.cur.peek()
		if !ok || b != ':' {
			return Element{}, newParseError(p.src, keyEl.offset, "expected ':' after mapping key")
		}
		p.cur.advance()
		if seen[keyText] {
			return Element{}, newParseError(p.src, keyEl.offset, duplicateKeyError(keyText).Error())
		}
		seen[keyText] = true
		firstKey = keyText
	}
}

func (p *Parser) parseSequenceBody(offset int, first Element) (Element, error) {
	seq := Sequence{first}
	for {
		if err := p.cur.skipSeparator(); err != nil {
			return Element{}, err
		}
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if b, ok := p.cur.peek(); ok && b == '}' {
			p.cur.advance()
			return Element{src: p.src, offset: offset, kind: KindSequence, seq: seq}, nil
		}
		el, err := p.ParseElement()
		if err != nil {
			return Element{}, err
		}
		seq = append(seq, el)
	}
}

func (p *Parser) expectClose(openOffset int) error {
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return err
	}
	b, ok := p.cur.peek()
	if !ok || b != '}' {
		return newParseError(p.src, openOffset, "unclosed '{'")
	}
	p.cur.advance()
	return nil
}

// skipSeparator consumes one member separator: a newline and/or a comma
// (in either order, any amount of whitespace around them), but never a
// trailing comma with nothing after it - that's left for the caller to
// reject by finding a '}' where a value was expected.
func (c *cursor) skipSeparator() error {
	_, err := c.skipSeparatorReportComma()
	return err
}

func (c *cursor) skipSeparatorReportComma() (bool, error) {
	if err := c.skipSpaceAndComments(); err != nil {
		return false, err
	}
	sawComma := false
	if b, ok := c.peek(); ok && b == ',' {
		c.advance()
		sawComma = true
	}
	return sawComma, c.skipSpaceAndComments()
}

// Parse parses data as a single top-level document value. Per C9's
// top-level ambiguity rule, a document that doesn't open with '{' is not
// necessarily one bare scalar: the first token is peeked to see whether
// it's immediately followed by ':' (an implicit mapping, with no
// enclosing braces) or by another value after a separator (an implicit
// sequence) - the same two shapes a braced value can take, just without
// the delimiters. This is what lets Compose's SuppressOuterBraces output
// round-trip back through Parse.
func Parse(data []byte, opts ParseOptions) (Element, error) {
	p := NewParser(data, opts)
	el, err := p.parseTopLevel()
	if err != nil {
		return Element{}, err
	}
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return Element{}, err
	}
	if !p.cur.atEOF() {
		return Element{}, newParseError(p.src, p.cur.pos, "unexpected trailing content")
	}
	return el, nil
}

func (p *Parser) parseTopLevel() (Element, error) {
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return Element{}, err
	}
	if p.cur.atEOF() {
		return Element{}, newParseError(p.src, p.cur.pos, "unexpected end of document")
	}
	b, _ := p.cur.peek()
	if b == '{' {
		return p.ParseElement()
	}
	return p.parseImplicitTopLevel()
}

// parseImplicitTopLevel handles the no-braces-at-all top-level shapes: an
// implicit mapping (first token followed by ':'), an implicit sequence
// (more than one value present), or a single bare scalar.
func (p *Parser) parseImplicitTopLevel() (Element, error) {
	offset := p.cur.pos
	first, firstKeyText, isQuotedKey, err := p.parseMemberOrKey()
	if err != nil {
		return Element{}, err
	}
	if err := p.cur.skipSpaceAndComments(); err != nil {
		return Element{}, err
	}
	if b, ok := p.cur.peek(); ok && b == ':' {
		if p.opts.WideKeys && !isQuotedKey {
			return Element{}, newParseError(p.src, first.offset, "mapping key must be quoted")
		}
		p.cur.advance()
		return p.parseImplicitMappingBody(offset, firstKeyText)
	}
	if p.cur.atEOF() {
		return first, nil
	}
	save := p.cur.pos
	if _, err := p.cur.skipSeparatorReportComma(); err != nil {
		return Element{}, err
	}
	if p.cur.atEOF() {
		p.cur.pos = save
		return first, nil
	}
	return p.parseImplicitSequenceBody(offset, first)
}

// parseImplicitMappingBody mirrors parseMappingBody, but since there is no
// enclosing '{'/'}' the body simply runs to EOF instead of to a closing
// brace, and a trailing separator with nothing after it is fine (there's
// no "}" for a trailing comma to be mistaken for closing).
func (p *Parser) parseImplicitMappingBody(offset int, firstKey string) (Element, error) {
	m := Mapping{wide: p.opts.WideKeys}
	seen := map[string]bool{firstKey: true}
	for {
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		val, err := p.ParseElement()
		if err != nil {
			return Element{}, err
		}
		m.entries = append(m.entries, entry{key: firstKey, value: val})

		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if p.cur.atEOF() {
			return Element{src: p.src, offset: offset, kind: KindMapping, mp: m}, nil
		}
		if _, err := p.cur.skipSeparatorReportComma(); err != nil {
			return Element{}, err
		}
		if p.cur.atEOF() {
			return Element{src: p.src, offset: offset, kind: KindMapping, mp: m}, nil
		}

		keyEl, keyText, isQuotedKey, err := p.parseMemberOrKey()
		if err != nil {
			return Element{}, err
		}
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if p.opts.WideKeys && !isQuotedKey {
			return Element{}, newParseError(p.src, keyEl.offset, "mapping key must be quoted")
		}
		b, ok := p.cur.peek()
		if !ok || b != ':' {
			return Element{}, newParseError(p.src, keyEl.offset, "expected ':' after mapping key")
		}
		p.cur.advance()
		if seen[keyText] {
			return Element{}, newParseError(p.src, keyEl.offset, duplicateKeyError(keyText).Error())
		}
		seen[keyText] = true
		firstKey = keyText
	}
}

// parseImplicitSequenceBody mirrors parseSequenceBody without a closing
// brace to stop at.
func (p *Parser) parseImplicitSequenceBody(offset int, first Element) (Element, error) {
	seq := Sequence{first}
	for {
		if err := p.cur.skipSeparator(); err != nil {
			return Element{}, err
		}
		if err := p.cur.skipSpaceAndComments(); err != nil {
			return Element{}, err
		}
		if p.cur.atEOF() {
			return Element{src: p.src, offset: offset, kind: KindSequence, seq: seq}, nil
		}
		el, err := p.ParseElement()
		if err != nil {
			return Element{}, err
		}
		seq = append(seq, el)
	}
}
