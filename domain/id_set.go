package domain

import (
	"encoding/json"
	"sort"
)

// IDSet is an unordered set of entity ids. The zero value (nil) is an empty set.
// IDSet values are treated as immutable; With and Without return copies.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s IDSet) clone(extra int) IDSet {
	out := make(IDSet, len(s)+extra)
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func (s IDSet) With(ids ...string) IDSet {
	out := s.clone(len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func (s IDSet) Without(ids ...string) IDSet {
	out := s.clone(0)
	for _, id := range ids {
		delete(out, id)
	}
	return out
}

// Minus returns the ids of s that are not in other.
func (s IDSet) Minus(other IDSet) IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
