// Package tagset provides the TagSet value type shared by both tag stores.
//
// A TagSet is an unordered collection of case-sensitive labels with no
// duplicates. Two sets are equal iff they hold exactly the same labels.
// The zero value is an empty set ready to use.
package tagset

import (
	"encoding/json"
	"sort"
	"strings"
)

// TagSet is a set of text labels.
type TagSet struct {
	m map[string]struct{}
}

// New creates a TagSet holding the given labels. Duplicates collapse.
func New(labels ...string) TagSet {
	s := TagSet{m: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		s.m[l] = struct{}{}
	}
	return s
}

// Add inserts a label into the set.
func (s *TagSet) Add(label string) {
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	s.m[label] = struct{}{}
}

// Has reports whether label is a member of the set.
func (s TagSet) Has(label string) bool {
	_, ok := s.m[label]
	return ok
}

// Len returns the number of labels.
func (s TagSet) Len() int {
	return len(s.m)
}

// IsEmpty reports whether the set has no labels.
func (s TagSet) IsEmpty() bool {
	return len(s.m) == 0
}

// Equal reports exact membership equality.
func (s TagSet) Equal(other TagSet) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for l := range s.m {
		if _, ok := other.m[l]; !ok {
			return false
		}
	}
	return true
}

// Union returns a new set holding every label of s and other.
// Neither operand is modified.
func (s TagSet) Union(other TagSet) TagSet {
	out := TagSet{m: make(map[string]struct{}, len(s.m)+len(other.m))}
	for l := range s.m {
		out.m[l] = struct{}{}
	}
	for l := range other.m {
		out.m[l] = struct{}{}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	return s.Union(TagSet{})
}

// Slice returns the labels in map iteration order. Callers must not
// rely on the order.
func (s TagSet) Slice() []string {
	out := make([]string, 0, len(s.m))
	for l := range s.m {
		out = append(out, l)
	}
	return out
}

// Sorted returns the labels in lexical order.
func (s TagSet) Sorted() []string {
	out := s.Slice()
	sort.Strings(out)
	return out
}

// String renders the set as a sorted bracketed list, e.g. [a b].
func (s TagSet) String() string {
	return "[" + strings.Join(s.Sorted(), " ") + "]"
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// MarshalYAML encodes the set as a sorted YAML sequence.
func (s TagSet) MarshalYAML() (interface{}, error) {
	return s.Sorted(), nil
}
