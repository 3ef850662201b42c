package document

import "github.com/nstrict/numbstrict"

// source is the shared, immutable backing buffer for every Element parsed
// out of one document. Elements hold a pointer to it rather than copying
// slices of it around; Go's garbage collector releases it once the last
// Element referencing it goes out of scope, which is the idiomatic
// replacement for the reference-counted shared buffer the format this was
// adapted from manages explicitly.
type source struct {
	name string
	data []byte
}

func (s *source) lineAndColumn(offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(s.data); i++ {
		if s.data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Element is a lazily-interpreted view into a parsed document: a byte
// range of the original source plus whatever the parser already had to
// determine structurally (whether it's a sequence, a mapping, or a
// scalar). Converting a scalar Element to a concrete Go value - ToInt,
// ToFloat64, ToBool, ToText - is deferred until the caller asks for it.
//
// The zero Element is not valid; Elements are only produced by Parse (and,
// for Mapping/Sequence entries, by indexing into an already-parsed
// Element).
type Element struct {
	src    *source
	offset int
	raw    string // the literal source text of this element, unquoted if it was a quoted scalar
	kind   Kind
	seq    Sequence
	mp     Mapping
}

// Kind reports whether e is text, a bool, a signed or unsigned integer, a
// real number, a sequence, or a mapping. For scalars this is computed once
// by the parser via the C11 classifier; for sequences and mappings it is
// known structurally.
func (e Element) Kind() Kind { return e.kind }

// SourceName returns the name Parse was given for e's document (e.g. a
// file path), or "" if none was given.
func (e Element) SourceName() string {
	if e.src == nil {
		return ""
	}
	return e.src.name
}

// Offset returns e's byte offset into its source document.
func (e Element) Offset() int { return e.offset }

// LineAndColumn returns e's 1-based line and column within its source
// document, computed from Offset. This is available for any Element, not
// only ones involved in a reported error - useful for diagnostics,
// highlighting, or editor tooling built on top of a parsed document.
func (e Element) LineAndColumn() (line, col int) {
	if e.src == nil {
		return 1, 1
	}
	return e.src.lineAndColumn(e.offset)
}

// ToText returns e's text. Every Element, regardless of Kind, has text:
// for a bool/int/real this is the same digits ToBool/ToInt/ToFloat64
// would parse; ToText never fails, so it has no error return - contrast
// numbstrict.ParseFloat64(e.raw), which can.
func (e Element) ToText() string { return e.raw }

// TextOr is ToText; included for symmetry with the other accessors' *Or
// forms, since text conversion never fails and so never needs a default.
func (e Element) TextOr(string) string { return e.raw }

// ToBool parses e's text as "true" or "false".
func (e Element) ToBool() (bool, error) { return numbstrict.ParseBool(e.raw) }

// BoolOr is ToBool with def returned in place of an error.
func (e Element) BoolOr(def bool) bool {
	v, err := e.ToBool()
	if err != nil {
		return def
	}
	return v
}

// ToInt parses e's text as a signed decimal or "0x"-hex integer.
func (e Element) ToInt() (int64, error) { return numbstrict.ParseInt(e.raw) }

// IntOr is ToInt with def returned in place of an error.
func (e Element) IntOr(def int64) int64 {
	v, err := e.ToInt()
	if err != nil {
		return def
	}
	return v
}

// ToUint parses e's text as an unsigned decimal or "0x"-hex integer.
func (e Element) ToUint() (uint64, error) { return numbstrict.ParseUint(e.raw) }

// UintOr is ToUint with def returned in place of an error.
func (e Element) UintOr(def uint64) uint64 {
	v, err := e.ToUint()
	if err != nil {
		return def
	}
	return v
}

// ToFloat64 parses e's text as a decimal real number.
func (e Element) ToFloat64() (float64, error) { return numbstrict.ParseFloat64(e.raw) }

// Float64Or is ToFloat64 with def returned in place of an error.
func (e Element) Float64Or(def float64) float64 {
	v, err := e.ToFloat64()
	if err != nil {
		return def
	}
	return v
}

// ToFloat32 parses e's text as a decimal real number rounded to binary32.
func (e Element) ToFloat32() (float32, error) { return numbstrict.ParseFloat32(e.raw) }

// ToSequence returns e's elements if e.Kind() == KindSequence, or an error
// otherwise.
func (e Element) ToSequence() (Sequence, error) {
	if e.kind != KindSequence {
		return nil, kindError("ToSequence", e.kind, KindSequence)
	}
	return e.seq, nil
}

// ToMapping returns e's key/value pairs if e.Kind() == KindMapping, or an
// error otherwise.
func (e Element) ToMapping() (Mapping, error) {
	if e.kind != KindMapping {
		return Mapping{}, kindError("ToMapping", e.kind, KindMapping)
	}
	return e.mp, nil
}
