package document

import "github.com/nstrict/numbstrict"

// Kind classifies what an Element actually holds.
type Kind uint8

//go:generate stringer -type=Kind

const (
	KindText Kind = iota
	KindBool
	KindSignedInt
	KindUnsignedInt
	KindReal
	KindSequence
	KindMapping
)

// classifyScalar implements C11: given the raw (unquoted) text of a leaf
// token, decide what kind of value it represents. The dispatch order
// matters - it's checked top to bottom, first match wins:
//
//  1. the literal "true" or "false" is always a bool, never text that
//     happens to parse as one of the numeric kinds below.
//  2. anything starting with a digit, a sign, or the letters that start
//     "inf"/"infinity"/"nan" is tried as a number: first as a signed
//     integer, then unsigned (covers integers too large for int64 but
//     still valid as uint64, and a literal "+" prefix which ParseInt
//     allows but whose semantics are clearer as unsigned), then as a
//     real (covers a decimal point, exponent, or non-finite literal).
//  3. everything else - including a numeric-looking prefix that still
//     fails all three numeric parses (e.g. "1.2.3") - is text.
//
// Sequences and mappings are never produced by classifyScalar: the parser
// already knows an Element is one or the other from the "{" that opens it,
// before classifyScalar is ever consulted.
func classifyScalar(raw string) Kind {
	if raw == "true" || raw == "false" {
		return KindBool
	}
	if looksNumeric(raw) {
		if _, err := numbstrict.ParseInt(raw); err == nil {
			return KindSignedInt
		}
		if _, err := numbstrict.ParseUint(raw); err == nil {
			return KindUnsignedInt
		}
		if _, err := numbstrict.ParseFloat64(raw); err == nil {
			return KindReal
		}
	}
	return KindText
}

func looksNumeric(raw string) bool {
	if raw == "" {
		return false
	}
	switch c := raw[0]; {
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-':
		return true
	case c == 'i' || c == 'I' || c == 'n' || c == 'N':
		return true // "inf", "infinity", "nan" and their case variants
	default:
		return false
	}
}
