// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package align

import (
	"github.com/specialistvlad/domdist/internal/cost"
	"github.com/specialistvlad/domdist/internal/element"
)

// Alignment is the result of Align.
type Alignment struct {
	Cost   int
	Script Script
}

// Distance returns the minimum cost of turning original into target under the
// default cost model.
func Distance(original, target element.DOM) int {
	return DistanceWith(cost.Default, original, target)
}

// DistanceWith is Distance under an arbitrary cost model.
func DistanceWith(model cost.Model, original, target element.DOM) int {
	n := len(target)
	insert := make([]int, n)
	row := make([]int, n+1)
	for j, e := range target {
		insert[j] = model.Insert(e)
		row[j+1] = row[j] + insert[j]
	}

	for _, src := range original {
		del := model.Delete(src)
		diag := row[0]
		row[0] += del
		for j, dst := range target {
			up := row[j+1]
			best := diag + model.Substitute(src, dst)
			if v := up + del; v < best {
				best = v
			}
			if v := row[j] + insert[j]; v < best {
				best = v
			}
			row[j+1] = best
			diag = up
		}
	}
	return row[n]
}

// Align returns the minimum cost together with one edit script achieving it,
// under the default cost model.
func Align(original, target element.DOM) Alignment {
	return AlignWith(cost.Default, original, target)
}

// AlignWith is Align under an arbitrary cost model.
func AlignWith(model cost.Model, original, target element.DOM) Alignment {
	l := newLattice(len(original), len(target))

	for i := 1; i <= l.m; i++ {
		l.set(i, 0, l.at(i-1, 0)+model.Delete(original[i-1]), Delete)
	}
	for j := 1; j <= l.n; j++ {
		l.set(0, j, l.at(0, j-1)+model.Insert(target[j-1]), Insert)
	}

	for i := 1; i <= l.m; i++ {
		src := original[i-1]
		del := model.Delete(src)
		for j := 1; j <= l.n; j++ {
			dst := target[j-1]
			sub := l.at(i-1, j-1) + model.Substitute(src, dst)
			up := l.at(i-1, j) + del
			left := l.at(i, j-1) + model.Insert(dst)

			switch {
			case sub <= up && sub <= left:
				kind := Alter
				if src.Equal(dst) {
					kind = Keep
				}
				l.set(i, j, sub, kind)
			case up <= left:
				l.set(i, j, up, Delete)
			default:
				l.set(i, j, left, Insert)
			}
		}
	}

	return Alignment{
		Cost:   l.at(l.m, l.n),
		Script: l.backtrack(original, target),
	}
}

// lattice is the (m+1)×(n+1) table stored row-major in flat slices.
type lattice struct {
	m, n  int
	cells []int
	moves []Kind
}

func newLattice(m, n int) *lattice {
	size := (m + 1) * (n + 1)
	return &lattice{
		m:     m,
		n:     n,
		cells: make([]int, size),
		moves: make([]Kind, size),
	}
}

func (l *lattice) at(i, j int) int {
	return l.cells[i*(l.n+1)+j]
}

func (l *lattice) set(i, j, v int, k Kind) {
	l.cells[i*(l.n+1)+j] = v
	l.moves[i*(l.n+1)+j] = k
}

func (l *lattice) move(i, j int) Kind {
	return l.moves[i*(l.n+1)+j]
}

func (l *lattice) backtrack(original, target element.DOM) Script {
	var ops Script
	i, j := l.m, l.n
	for i > 0 || j > 0 {
		k := l.move(i, j)
		op := Op{Kind: k, SourceIndex: -1, TargetIndex: -1}
		switch k {
		case Keep, Alter:
			op.SourceIndex, op.TargetIndex = i-1, j-1
			op.Source, op.Target = original[i-1], target[j-1]
			op.Cost = l.at(i, j) - l.at(i-1, j-1)
			i, j = i-1, j-1
		case Delete:
			op.SourceIndex = i - 1
			op.Source = original[i-1]
			op.Cost = l.at(i, j) - l.at(i-1, j)
			i--
		case Insert:
			op.TargetIndex = j - 1
			op.Target = target[j-1]
			op.Cost = l.at(i, j) - l.at(i, j-1)
			j--
		}
		ops = append(ops, op)
	}

	for a, b := 0, len(ops)-1; a < b; a, b = a+1, b-1 {
		ops[a], ops[b] = ops[b], ops[a]
	}
	return ops
}
