package document

// Sequence is an ordered list of Elements, the document format's array
// type: `{ 1, 2, 3 }`.
type Sequence []Element

// Len returns the number of elements in s.
func (s Sequence) Len() int { return len(s) }

// At returns the element at index i. It panics if i is out of range, the
// same contract a plain slice index gives - Sequence is a named slice
// type, not a defensive wrapper.
func (s Sequence) At(i int) Element { return s[i] }
