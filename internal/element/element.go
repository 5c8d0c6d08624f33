// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package element defines the Structured Element, one parsed selector token such
// as `div#main.card.wide`, and the DOM, an ordered sequence of them.
//
// Elements are values. Once built they are never changed; code that needs a
// modified element builds a new one.
package element

import (
	"strings"

	"github.com/specialistvlad/domdist/internal/classset"
)

// Element is a tag with an optional id and a set of class names.
type Element struct {
	tag     string
	id      string
	hasID   bool
	classes classset.Set
}

// DOM is an ordered sequence of elements. Position is significant.
type DOM []Element

// New returns an element without an id. It panics if tag is empty.
func New(tag string, classes ...string) Element {
	mustTag(tag)
	return Element{tag: tag, classes: classset.New(classes...)}
}

// NewWithID returns an element carrying id. An empty id is still an id, but an
// empty tag panics.
func NewWithID(tag, id string, classes ...string) Element {
	mustTag(tag)
	return Element{tag: tag, id: id, hasID: true, classes: classset.New(classes...)}
}

func mustTag(tag string) {
	if tag == "" {
		panic("element: tag must not be empty")
	}
}

// Tag returns the element's tag name.
func (e Element) Tag() string {
	return e.tag
}

// ID returns the element's id and whether it has one.
func (e Element) ID() (string, bool) {
	return e.id, e.hasID
}

// HasID reports whether the element carries an id.
func (e Element) HasID() bool {
	return e.hasID
}

// Classes returns a copy of the element's class set.
func (e Element) Classes() classset.Set {
	return e.classes.Clone()
}

// ClassCount returns the number of classes on the element.
func (e Element) ClassCount() int {
	return e.classes.Len()
}

// ClassDifference returns the number of class additions and removals needed to
// give e the classes of other.
func (e Element) ClassDifference(other Element) int {
	return e.classes.SymmetricDifferenceLen(other.classes)
}

// Equal reports whether both elements match field by field. Class order is
// not significant.
func (e Element) Equal(other Element) bool {
	return e.tag == other.tag &&
		e.hasID == other.hasID &&
		e.id == other.id &&
		e.classes.Equal(other.classes)
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	c := e
	c.classes = e.classes.Clone()
	return c
}

// String renders e in selector form. The output parses back to an equal element.
func (e Element) String() string {
	var b strings.Builder
	b.WriteString(e.tag)
	if e.hasID {
		b.WriteByte('#')
		b.WriteString(e.id)
	}
	b.WriteString(e.classes.String())
	return b.String()
}

// Equal reports whether both sequences have equal elements at every position.
func (d DOM) Equal(other DOM) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// String renders the sequence as space-separated selectors.
func (d DOM) String() string {
	parts := make([]string, len(d))
	for i, e := range d {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
