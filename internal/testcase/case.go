// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package testcase reads pairs of selector lines to compare, optionally with
// the distance each pair is expected to have.
//
// Three file formats are understood, chosen by extension:
//
//   - .txt (and anything unrecognised): repeating groups of three lines holding
//     the original DOM, the target DOM and the expected distance. A blank
//     original line ends the input.
//   - .hcl: `case "name" { original = "..." target = "..." expected = 3 }` blocks.
//   - .yaml / .yml: a top-level `cases` list with the same fields.
//
// The selector text itself is not parsed here; that is left to the caller so
// that a bad selector is reported against its case rather than its file.
package testcase

import "fmt"

// Case is one comparison to run.
type Case struct {
	// Name identifies the case in logs and errors.
	Name string
	// Source is the file and position the case was read from, e.g. "cases.txt:4".
	Source string
	// Original and Target are space-separated selector lines.
	Original string
	Target   string
	// Expected is the recorded distance, or nil when none was given.
	Expected *int
}

func (c Case) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Source)
}
