// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package classset holds the class names of a single element.
//
// A Set remembers the order in which names were added so that an element can be
// printed back the way it was written, but every comparison it offers is based
// on membership alone: two sets holding the same names in a different order are
// equal, and the cost of turning one into the other is zero.
package classset

import "strings"

// Set is an insertion-ordered set of class names. The zero value is an empty
// set ready to use.
type Set struct {
	names []string
	index map[string]struct{}
}

// New returns a set containing names in the given order. Repeated names keep
// their first position.
func New(names ...string) Set {
	var s Set
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add appends name unless it is already present.
func (s *Set) Add(name string) {
	if s.Contains(name) {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

// Remove deletes name from the set. Removing an absent name does nothing.
func (s *Set) Remove(name string) {
	if !s.Contains(name) {
		return
	}
	delete(s.index, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i:i], s.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s.names)
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the names in insertion order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Union returns a new set with every name from s followed by the names of
// other that s lacks.
func (s Set) Union(other Set) Set {
	out := s.Clone()
	for _, name := range other.names {
		out.Add(name)
	}
	return out
}

// Intersection returns a new set with the names present in both sets, in the
// order they appear in s.
func (s Set) Intersection(other Set) Set {
	var out Set
	for _, name := range s.names {
		if other.Contains(name) {
			out.Add(name)
		}
	}
	return out
}

// Equal reports whether both sets hold exactly the same names. Order is ignored.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, name := range s.names {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// SymmetricDifferenceLen returns |s ∪ other| - |s ∩ other|, the number of names
// that must be added or removed to make the two sets equal.
func (s Set) SymmetricDifferenceLen(other Set) int {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	shared := 0
	for _, name := range small.names {
		if large.Contains(name) {
			shared++
		}
	}
	return s.Len() + other.Len() - 2*shared
}

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	var out Set
	for _, name := range s.names {
		out.Add(name)
	}
	return out
}

// String renders the set in selector form, e.g. ".a.b".
func (s Set) String() string {
	var b strings.Builder
	for _, name := range s.names {
		b.WriteByte('.')
		b.WriteString(name)
	}
	return b.String()
}
