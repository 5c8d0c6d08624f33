// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package align

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/domdist/internal/element"
)

// Kind identifies an edit operation.
type Kind int

const (
	// Keep leaves a source element in place because it already equals its target.
	Keep Kind = iota + 1
	// Alter rewrites a source element's fields into those of a target element.
	Alter
	// Delete removes a source element.
	Delete
	// Insert adds a target element.
	Insert
)

func (k Kind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Alter:
		return "alter"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one step of an edit script. SourceIndex is -1 for Insert and
// TargetIndex is -1 for Delete.
type Op struct {
	Kind        Kind
	SourceIndex int
	TargetIndex int
	Source      element.Element
	Target      element.Element
	Cost        int
}

func (o Op) String() string {
	switch o.Kind {
	case Keep:
		return fmt.Sprintf("keep %s", o.Source)
	case Alter:
		return fmt.Sprintf("alter %s -> %s (%d)", o.Source, o.Target, o.Cost)
	case Delete:
		return fmt.Sprintf("delete %s (%d)", o.Source, o.Cost)
	case Insert:
		return fmt.Sprintf("insert %s (%d)", o.Target, o.Cost)
	default:
		return o.Kind.String()
	}
}

// Script is an ordered list of operations consuming the source and target
// left to right.
type Script []Op

// Cost returns the sum of the operation costs.
func (s Script) Cost() int {
	total := 0
	for _, op := range s {
		total += op.Cost
	}
	return total
}

// Apply replays the script against original and returns the resulting DOM.
// It fails when the script does not consume original in order.
func (s Script) Apply(original element.DOM) (element.DOM, error) {
	out := make(element.DOM, 0, len(original))
	next := 0
	for n, op := range s {
		switch op.Kind {
		case Keep, Alter, Delete:
			if op.SourceIndex != next || next >= len(original) {
				return nil, fmt.Errorf("op %d (%s) expects source index %d, next unconsumed is %d", n, op.Kind, op.SourceIndex, next)
			}
			next++
			if op.Kind == Keep {
				out = append(out, original[op.SourceIndex])
			} else if op.Kind == Alter {
				out = append(out, op.Target)
			}
		case Insert:
			out = append(out, op.Target)
		default:
			return nil, fmt.Errorf("op %d has unknown kind %s", n, op.Kind)
		}
	}
	if next != len(original) {
		return nil, fmt.Errorf("script consumed %d of %d source elements", next, len(original))
	}
	return out, nil
}

// String renders one operation per line.
func (s Script) String() string {
	lines := make([]string, len(s))
	for i, op := range s {
		lines[i] = op.String()
	}
	return strings.Join(lines, "\n")
}
