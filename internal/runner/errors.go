// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package runner

import (
	"fmt"

	"github.com/specialistvlad/domdist/internal/testcase"
)

// Side names which of a case's two selector lines an error refers to.
type Side string

const (
	SideOriginal Side = "original"
	SideTarget   Side = "target"
)

// CaseError is a case whose selector text could not be parsed. It carries the
// case and the offending line so callers never need to pick apart a message.
type CaseError struct {
	Case testcase.Case
	Side Side
	Err  error
}

// Sequence returns the selector line that failed to parse.
func (e *CaseError) Sequence() string {
	if e.Side == SideTarget {
		return e.Case.Target
	}
	return e.Case.Original
}

// Error implements the error interface for CaseError.
func (e *CaseError) Error() string {
	return fmt.Sprintf("%s: %s sequence %q: %v", e.Case, e.Side, e.Sequence(), e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// MismatchError is a case whose computed distance differs from the recorded one.
type MismatchError struct {
	Case testcase.Case
	Got  int
	Want int
}

// Error implements the error interface for MismatchError.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: distance %d, expected %d", e.Case, e.Got, e.Want)
}
