// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package selector turns selector text such as `div#main.card` into elements.
//
// A token has the shape tag[#id][.class]*, where every name is made of letters,
// digits, '-' and '_'. Only the tag is required. Matching is anchored at the
// start of the token: characters after the last recognised name are ignored,
// and empty class segments (`div..a`, `div.`) are skipped.
package selector

import (
	"regexp"
	"strings"

	"github.com/specialistvlad/domdist/internal/element"
)

var tokenPattern = regexp.MustCompile(`^([0-9A-Za-z_-]+)(#[0-9A-Za-z_-]*)?(\.[0-9A-Za-z_.-]*)?`)

// Parse converts a single token into an element.
func Parse(token string) (element.Element, error) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return element.Element{}, &ParseError{Token: token}
	}

	var classes []string
	if m[3] != "" {
		for _, name := range strings.Split(m[3][1:], ".") {
			if name != "" {
				classes = append(classes, name)
			}
		}
	}

	if m[2] != "" {
		return element.NewWithID(m[1], m[2][1:], classes...), nil
	}
	return element.New(m[1], classes...), nil
}

// ParseDOM splits line on whitespace and parses every token. A blank line
// yields an empty DOM.
func ParseDOM(line string) (element.DOM, error) {
	return parseDOM(line, Parse)
}

func parseDOM(line string, parse func(string) (element.Element, error)) (element.DOM, error) {
	tokens := strings.Fields(line)
	dom := make(element.DOM, 0, len(tokens))
	for i, token := range tokens {
		e, err := parse(token)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Position = i + 1
			}
			return nil, err
		}
		dom = append(dom, e)
	}
	return dom, nil
}
