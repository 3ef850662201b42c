// Package document implements a compact, human-editable text format built
// on top of numbstrict's number/text conversions: mappings and sequences
// of scalar or nested values, with comments, flexible separators, and a
// variant classifier that tells a caller what a bare piece of scalar text
// actually is (a boolean, an integer, a real, or plain text) without the
// caller having to guess up front.
//
// An Element is a lazily-interpreted, immutable view into the parsed
// source: constructing one during Parse costs a byte-range slice, not a
// conversion, and a caller only pays for ParseFloat64/ParseInt/etc. when it
// actually calls one of Element's To* accessors. Parsed documents hold a
// reference to their source buffer; there is nothing to release, since Go
// collects the buffer once the last Element referencing it is gone.
//
// Package numbstrict.Parser plays the same role here that context.Context
// plays for db47h/decimal: ParseOptions and ComposeOptions are this
// package's only configuration surface, threading through parsing and
// composition the handful of choices the format leaves open (inline vs.
// multi-line, bracket suppression, byte-string vs. wide-string map keys).
package document
