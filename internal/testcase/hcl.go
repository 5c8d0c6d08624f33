// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testcase

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclCaseFile represents the top-level structure of a case file for decoding.
type hclCaseFile struct {
	Cases []*hclCase `hcl:"case,block"`
}

// hclCase keeps the block body so that its attributes can be checked against
// caseSchema, and each value reported at its own position in the file.
type hclCase struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var caseSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "original", Required: true},
		{Name: "target", Required: true},
		{Name: "expected"},
	},
}

// ReadHCL decodes every `case` block in src. filename labels diagnostics.
func ReadHCL(src []byte, filename string) ([]Case, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &FormatError{Source: filename, Msg: "failed to parse HCL", Err: diags}
	}

	var parsed hclCaseFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	contents := make([]*hcl.BodyContent, len(parsed.Cases))
	for i, hc := range parsed.Cases {
		if hc == nil || hc.Body == nil {
			continue
		}
		content, d := hc.Body.Content(caseSchema)
		diags = append(diags, d...)
		contents[i] = content
	}
	if diags.HasErrors() {
		return nil, &FormatError{Source: filename, Msg: "failed to decode HCL", Err: diags}
	}

	cases := make([]Case, 0, len(parsed.Cases))
	seen := make(map[string]hcl.Range, len(parsed.Cases))
	for i, hc := range parsed.Cases {
		// The body's missing-item range sits on the block header.
		rng := hc.Body.MissingItemRange()
		if prev, dup := seen[hc.Name]; dup {
			return nil, &FormatError{
				Source: rng.String(),
				Msg:    fmt.Sprintf("duplicate case %q, first defined at %s", hc.Name, prev.String()),
			}
		}
		seen[hc.Name] = rng

		c, diags := toCase(hc.Name, contents[i])
		if diags.HasErrors() {
			return nil, &FormatError{Source: rng.String(), Msg: fmt.Sprintf("invalid case %q", hc.Name), Err: diags}
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func toCase(name string, content *hcl.BodyContent) (Case, hcl.Diagnostics) {
	original := content.Attributes["original"]
	target := content.Attributes["target"]

	var diags hcl.Diagnostics
	c := Case{
		Name:   name,
		Source: fmt.Sprintf("%s:%d", original.Range.Filename, original.Range.Start.Line),
	}

	var d hcl.Diagnostics
	c.Original, d = stringValue(original.Expr, "original")
	diags = append(diags, d...)
	c.Target, d = stringValue(target.Expr, "target")
	diags = append(diags, d...)
	if expected, ok := content.Attributes["expected"]; ok {
		c.Expected, d = expectedValue(expected.Expr)
		diags = append(diags, d...)
	}

	return c, diags
}

func stringValue(expr hcl.Expression, attr string) (string, hcl.Diagnostics) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}

	var s string
	if err := gocty.FromCtyValue(v, &s); err != nil {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid \"" + attr + "\" value",
			Detail:   fmt.Sprintf("Expected a selector string: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return s, nil
}

func expectedValue(expr hcl.Expression) (*int, hcl.Diagnostics) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if v.IsNull() {
		return nil, nil
	}

	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid \"expected\" value",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		}}
	}

	if v.Type() != cty.Number {
		return nil, invalid(fmt.Sprintf("Expected a whole number, got %s.", v.Type().FriendlyName()))
	}
	if v.LessThan(cty.Zero).True() {
		return nil, invalid(fmt.Sprintf("Distance must not be negative, got %s.", v.AsBigFloat().Text('f', -1)))
	}
	if !v.AsBigFloat().IsInt() {
		return nil, invalid("Distance must be a whole number.")
	}

	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return nil, invalid(fmt.Sprintf("Distance does not fit an integer: %s.", err))
	}
	return &n, nil
}
