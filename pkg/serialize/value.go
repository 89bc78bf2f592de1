// Package serialize renders nested key/value documents as compact bracketed
// text for diagnostics.
//
// A document is a tree of Values. Value is a closed set: String, Number, Bool
// and *Structure. Structures keep insertion order, so the rendered output is
// deterministic.
package serialize

// Value is a scalar or a Structure.
type Value interface {
	isValue()
}

// String is a text scalar.
type String string

// Number is a numeric scalar.
type Number float64

// Bool is a boolean scalar.
type Bool bool

func (String) isValue()     {}
func (Number) isValue()     {}
func (Bool) isValue()       {}
func (*Structure) isValue() {}

// Entry is one member of a Structure. Positional entries have no key.
type Entry struct {
	Key    string
	HasKey bool
	Value  Value
}

// Structure is an insertion-ordered container of keyed and positional
// entries.
type Structure struct {
	entries []Entry
	index   map[string]int
}

// NewStructure returns an empty Structure.
func NewStructure() *Structure {
	return &Structure{index: make(map[string]int)}
}

// Set binds key to value. Setting an existing key replaces its value in place
// and keeps its original position.
func (s *Structure) Set(key string, value Value) *Structure {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value
		return s
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, HasKey: true, Value: value})
	return s
}

// Append adds a positional entry.
func (s *Structure) Append(value Value) *Structure {
	s.entries = append(s.entries, Entry{Value: value})
	return s
}

// Get returns the value bound to key.
func (s *Structure) Get(key string) (Value, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.entries[i].Value, true
}

// Len returns the number of entries.
func (s *Structure) Len() int {
	return len(s.entries)
}

// Entries returns the entries in insertion order.
func (s *Structure) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}
