package document

import "fmt"

// entry is one key/value pair of a parsed Mapping, kept in source order.
type entry struct {
	key   string
	value Element
}

// Mapping is an ordered set of key/value pairs, the document format's
// object type: `{ name: "a", count: 3 }`. Order is preserved from the
// source text and lookups are linear, which is the right tradeoff for the
// handful-of-keys, human-edited documents this format targets - see
// SPEC_FULL.md's Non-goals.
//
// A Mapping parsed with byte-string keys (bare identifiers or a plain
// quoted string) and one parsed with wide-string keys (always quoted,
// escaping full Unicode through \u/\U) are both represented by this type;
// Wide reports which flavor the source used, since that choice is
// preserved on Compose.
type Mapping struct {
	entries []entry
	wide    bool
}

// Wide reports whether m's keys were parsed/should be composed using the
// wide-string (always-quoted, Unicode-escaped) key flavor rather than the
// byte-string (bare-identifier-when-possible) flavor.
func (m Mapping) Wide() bool { return m.wide }

// Len returns the number of entries in m.
func (m Mapping) Len() int { return len(m.entries) }

// Keys returns m's keys in source order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Get returns the value associated with key and whether it was present.
func (m Mapping) Get(key string) (Element, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return Element{}, false
}

// Entry is one key/value pair of a Mapping, as returned by Entries.
type Entry struct {
	Key   string
	Value Element
}

// Entries returns m's key/value pairs in source order.
func (m Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = Entry{Key: e.key, Value: e.value}
	}
	return out
}

func kindError(fn string, got, want Kind) error {
	return fmt.Errorf("document: %s: element is %s, not %s", fn, got, want)
}

func duplicateKeyError(key string) error {
	return fmt.Errorf("document: duplicate mapping key %q", key)
}
