package hclgraph

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// evalString evaluates an optional scalar attribute expression, converting
// primitives to their string form. present is false when the attribute was
// omitted.
func evalString(expr hcl.Expression) (value string, present bool, err error) {
	if expr == nil {
		return "", false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", false, fmt.Errorf("%s", diags.Error())
	}
	if val.IsNull() {
		return "", false, nil
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	return str.AsString(), true, nil
}

// evalStringList evaluates an optional list/tuple attribute expression,
// converting each element to its string form.
func evalStringList(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected a list, got %s", val.Type().FriendlyName())
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		str, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("cannot convert list element %s to string: %w", elem.Type().FriendlyName(), err)
		}
		out = append(out, str.AsString())
	}
	return out, nil
}
