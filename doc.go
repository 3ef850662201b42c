// Package numbstrict converts between binary floating-point values and
// their decimal text representation, and back, without ever producing a
// result that isn't the correctly-rounded (round-to-nearest, ties-to-even)
// binary64/binary32 value for the text given - or, going the other way,
// the shortest decimal text that reads back to exactly the same bits.
//
// The package is organized the way the library it's adapted from is:
// every conversion is a small set of free functions operating on plain
// []byte/string, with no package-level state beyond a lazily-built,
// read-only table of powers of ten (see powers.go). There is no
// configuration object and nothing to construct; ParseFloat64 and
// AppendFloat64 (and their 32-bit and integer/bool/string counterparts)
// are the whole surface.
//
// Conversion failures are reported as *ParseError, which carries the name
// of the failing conversion, the offending text, and an ErrorKind
// distinguishing a syntax error from an out-of-range value. Floating-point
// conversions never report ErrRange: overflow and underflow saturate to
// +/-Inf and +/-0 per IEEE 754, exactly as the literals "inf" and "nan" are
// accepted as first-class values rather than errors.
//
// The document sub-package builds a compact, human-editable text format on
// top of this package's conversions, the same way the library this was
// adapted from layers a precision/rounding policy on top of its numeric
// core.
package numbstrict
