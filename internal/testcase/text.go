// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testcase

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// ReadText reads every case from r in the three-line text format. name is used
// to label cases and errors.
func ReadText(r io.Reader, name string) ([]Case, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	var cases []Case
	for {
		original, ok := next()
		if !ok || strings.TrimSpace(original) == "" {
			break
		}
		start := lineNo

		target, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, &FormatError{Source: fmt.Sprintf("%s:%d", name, lineNo), Err: err}
			}
			return nil, &FormatError{
				Source: fmt.Sprintf("%s:%d", name, start),
				Msg:    "missing target line",
				Err:    ErrTruncated,
			}
		}

		c := Case{
			Name:     fmt.Sprintf("case-%d", len(cases)+1),
			Source:   fmt.Sprintf("%s:%d", name, start),
			Original: original,
			Target:   target,
		}

		if expected, ok := next(); ok && strings.TrimSpace(expected) != "" {
			n, err := parseExpected(strings.TrimSpace(expected))
			if err != nil {
				return nil, &FormatError{Source: fmt.Sprintf("%s:%d", name, lineNo), Msg: "invalid expected distance", Err: err}
			}
			c.Expected = &n
		}
		cases = append(cases, c)
	}

	if err := sc.Err(); err != nil {
		return nil, &FormatError{Source: fmt.Sprintf("%s:%d", name, lineNo+1), Err: err}
	}
	return cases, nil
}

func parseExpected(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("distance %d is negative", n)
	}
	return n, nil
}
