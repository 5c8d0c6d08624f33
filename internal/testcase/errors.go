// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testcase

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when input ends in the middle of a case.
var ErrTruncated = errors.New("input ends in the middle of a case")

// FormatError reports malformed case input. It never describes a selector
// problem; those surface when the case is evaluated.
type FormatError struct {
	Source string
	Msg    string
	Err    error
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
