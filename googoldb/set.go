package googoldb

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Set is a set of strings that serializes as a sorted JSON array, so
// snapshots are stable across saves.
type Set map[string]struct{}

func NewSet(vals ...string) Set {
	s := make(Set, len(vals))
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

func (s Set) Add(v string) {
	s[v] = struct{}{}
}

func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// List returns the members in lexicographic order.
func (s Set) List() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var vals []string
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*s = NewSet(vals...)
	return nil
}
