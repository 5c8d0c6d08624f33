// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package align computes the cheapest way to turn one DOM into another.
//
// # How It Works
//
// Three moves are allowed at every step: delete the next element of the source,
// insert the next element of the target, or alter the next source element into
// the next target element. The cost of each move comes from a cost.Model.
//
// The minimum total cost is found with the classic edit-distance lattice. Cell
// (i, j) holds the cheapest way to turn the first i source elements into the
// first j target elements:
//
//	D[0][0] = 0
//	D[i][0] = D[i-1][0] + Delete(A[i-1])
//	D[0][j] = D[0][j-1] + Insert(B[j-1])
//	D[i][j] = min(D[i-1][j]   + Delete(A[i-1]),
//	              D[i][j-1]   + Insert(B[j-1]),
//	              D[i-1][j-1] + Substitute(A[i-1], B[j-1]))
//
// The answer is D[m][n]. Filling the lattice takes O(m·n) time.
//
// # Two Entry Points
//
//   - Distance only needs the final cost, so it keeps a single row of the
//     lattice and uses O(n) memory.
//   - Align keeps the whole lattice plus a backpointer per cell and walks it
//     back from (m, n) to produce the edit Script. When several moves reach the
//     same minimum, substitution wins over deletion and deletion over insertion,
//     so the script for a given input is always the same.
//
// Both are pure functions over their arguments. They are safe to call from any
// number of goroutines at once and never fail for finite inputs, empty DOMs
// included.
package align
