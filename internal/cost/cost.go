// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package cost prices the three primitive edit operations on elements.
//
// Deleting an element always costs 1. Inserting one costs 1 for the tag, 1 for
// an id and 1 per class, since each of those has to be written out. Altering an
// element in place costs one per changed field: 1 for a new tag, 1 or 2 for the
// id (add/remove, or replace) and 1 per class that is added or removed.
package cost

import (
	"fmt"

	"github.com/specialistvlad/domdist/internal/element"
)

// Model prices edit operations. Implementations must be pure, non-negative and
// give Substitute(e, e) == 0.
type Model interface {
	Delete(e element.Element) int
	Insert(e element.Element) int
	Substitute(a, b element.Element) int
}

// Default is the standard cost model.
var Default Model = defaultModel{}

type defaultModel struct{}

func (defaultModel) Delete(e element.Element) int {
	return DeleteCost(e)
}

func (defaultModel) Insert(e element.Element) int {
	return InsertCost(e)
}

func (defaultModel) Substitute(a, b element.Element) int {
	return SubstituteCost(a, b)
}

// DeleteCost returns the cost of removing e.
func DeleteCost(element.Element) int {
	return 1
}

// InsertCost returns the cost of writing e from scratch.
func InsertCost(e element.Element) int {
	c := 1 + e.ClassCount()
	if e.HasID() {
		c++
	}
	return c
}

// SubstituteCost returns the cost of altering a until it equals b.
func SubstituteCost(a, b element.Element) int {
	c := 0
	if a.Tag() != b.Tag() {
		c++
	}
	c += idCost(a, b)
	c += a.ClassDifference(b)
	return c
}

func idCost(a, b element.Element) int {
	aID, aOK := a.ID()
	bID, bOK := b.ID()
	switch {
	case aOK != bOK:
		return 1
	case aOK && aID != bID:
		return 2
	default:
		return 0
	}
}

// Weights scales each primitive operation of the default model.
type Weights struct {
	Delete     int
	Insert     int
	Substitute int
}

// Weighted is the default model with every operation multiplied by its weight.
type Weighted struct {
	w Weights
}

// NewWeighted validates w and returns the weighted model.
func NewWeighted(w Weights) (*Weighted, error) {
	if w.Delete < 0 || w.Insert < 0 || w.Substitute < 0 {
		return nil, fmt.Errorf("cost weights must be non-negative, got %+v", w)
	}
	return &Weighted{w: w}, nil
}

func (m *Weighted) Delete(e element.Element) int {
	return m.w.Delete * DeleteCost(e)
}

func (m *Weighted) Insert(e element.Element) int {
	return m.w.Insert * InsertCost(e)
}

func (m *Weighted) Substitute(a, b element.Element) int {
	return m.w.Substitute * SubstituteCost(a, b)
}
