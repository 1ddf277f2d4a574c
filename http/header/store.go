// Package header provides the multimap backing a request's headers and query params.
package header

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xy-planning-network/rex"
)

// A Store maps a header name to every value added under it, in the order added.
//
// Names are kept exactly as given; "Host" and "host" are different names.
// Values are kept raw; Store never decodes them.
//
// The zero value is an empty Store ready to use.
// A Store is not safe for concurrent use.
type Store struct {
	vals map[string][]string
}

// Add appends value to the values for name.
func (s *Store) Add(name, value string) {
	if s.vals == nil {
		s.vals = make(map[string][]string)
	}

	s.vals[name] = append(s.vals[name], value)
}

// Get returns the first value for name.
// ok is false when nothing has been added under name.
func (s *Store) Get(name string) (value string, ok bool) {
	vals := s.vals[name]
	if len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

// Require returns the first value for name.
//
// If nothing has been added under name, Require returns a *MissingError carrying msg,
// which unwraps to [rex.ErrBadRequest].
func (s *Store) Require(name, msg string) (string, error) {
	value, ok := s.Get(name)
	if !ok {
		return "", &MissingError{Name: name, Msg: msg}
	}

	return value, nil
}

// Values returns a copy of every value for name in the order added.
// If nothing has been added under name, Values returns an empty slice.
func (s *Store) Values(name string) []string {
	vals := make([]string, len(s.vals[name]))
	copy(vals, s.vals[name])

	return vals
}

// Lookup is Values but falls back to matching name case-insensitively
// when no exact match exists.
// If more than one name matches case-insensitively, the lexically smallest wins.
func (s *Store) Lookup(name string) ([]string, bool) {
	if _, ok := s.vals[name]; ok {
		return s.Values(name), true
	}

	for _, n := range s.Names() {
		if strings.EqualFold(n, name) {
			return s.Values(n), true
		}
	}

	return []string{}, false
}

// Names returns every name with at least one value, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vals))
	for name := range s.vals {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of distinct names in s.
func (s *Store) Len() int { return len(s.vals) }

// A MissingError is returned when a required header or query param has not been sent.
type MissingError struct {
	Name string
	Msg  string
}

func (e *MissingError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %q is required", rex.ErrBadRequest, e.Name)
	}

	return fmt.Sprintf("%s: %s", rex.ErrBadRequest, e.Msg)
}

func (*MissingError) Unwrap() error { return rex.ErrBadRequest }
