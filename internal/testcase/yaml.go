// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testcase

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCaseFile struct {
	Cases []yamlCase `yaml:"cases"`
}

type yamlCase struct {
	Name     string `yaml:"name"`
	Original string `yaml:"original"`
	Target   string `yaml:"target"`
	Expected *int   `yaml:"expected"`
}

// ReadYAML decodes the `cases` list in src. Unknown fields are rejected.
func ReadYAML(src []byte, filename string) ([]Case, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var parsed yamlCaseFile
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, &FormatError{Source: filename, Msg: "failed to decode YAML", Err: err}
	}

	cases := make([]Case, 0, len(parsed.Cases))
	for i, yc := range parsed.Cases {
		source := fmt.Sprintf("%s#cases[%d]", filename, i)
		if yc.Expected != nil && *yc.Expected < 0 {
			return nil, &FormatError{Source: source, Msg: fmt.Sprintf("distance %d is negative", *yc.Expected)}
		}
		name := yc.Name
		if name == "" {
			name = fmt.Sprintf("case-%d", i+1)
		}
		cases = append(cases, Case{
			Name:     name,
			Source:   source,
			Original: yc.Original,
			Target:   yc.Target,
			Expected: yc.Expected,
		})
	}
	return cases, nil
}
