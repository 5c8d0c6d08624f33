// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package selector

import "fmt"

// ParseError reports a token that does not start with a tag name.
type ParseError struct {
	Token string
	// Position is the 1-based index of the token within its line, or 0 when
	// the token was parsed on its own.
	Position int
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("selector: token %d %q does not start with a tag name", e.Position, e.Token)
	}
	return fmt.Sprintf("selector: token %q does not start with a tag name", e.Token)
}
