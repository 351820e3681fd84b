// Package textops registers single-string text transforms: trim, replace,
// substring, repeat, pad_left, and pad_right.
package textops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/strgraphgo/internal/op"
)

// Module registers the text transform set.
type Module struct{}

// Register implements op.Module.
func (m *Module) Register(r *op.Registry) {
	r.Register("trim", trimOp)
	r.Register("replace", replaceOp)
	r.Register("substring", substringOp)
	r.Register("repeat", repeatOp)
	r.Register("pad_left", padLeftOp)
	r.Register("pad_right", padRightOp)
}

// requireShape rejects argument shapes other than one input and exactly
// wantConstants constants.
func requireShape(name string, inputs, constants []string, wantConstants int) error {
	if len(inputs) != 1 || len(constants) != wantConstants {
		return fmt.Errorf("%s requires exactly one input and %d constants, got %d inputs and %d constants",
			name, wantConstants, len(inputs), len(constants))
	}
	return nil
}

func intConstant(name, field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: constant %s must be a decimal integer, got %q", name, field, raw)
	}
	return v, nil
}

// trimOp cuts leading and trailing whitespace.
func trimOp(inputs, constants []string) (op.Result, error) {
	if err := requireShape("trim", inputs, constants, 0); err != nil {
		return op.Result{}, err
	}
	return op.SingleResult(strings.TrimSpace(inputs[0])), nil
}

// replaceOp substitutes every occurrence of constants[0] with constants[1].
func replaceOp(inputs, constants []string) (op.Result, error) {
	if err := requireShape("replace", inputs, constants, 2); err != nil {
		return op.Result{}, err
	}
	return op.SingleResult(strings.ReplaceAll(inputs[0], constants[0], constants[1])), nil
}

// substringOp extracts constants[1] characters starting at rune offset
// constants[0]. Out-of-range bounds clamp to the input.
func substringOp(inputs, constants []string) (op.Result, error) {
	if err := requireShape("substring", inputs, constants, 2); err != nil {
		return op.Result{}, err
	}
	start, err := intConstant("substring", "start", constants[0])
	if err != nil {
		return op.Result{}, err
	}
	length, err := intConstant("substring", "length", constants[1])
	if err != nil {
		return op.Result{}, err
	}
	if start < 0 || length < 0 {
		return op.Result{}, fmt.Errorf("substring: start and length must be non-negative, got %d and %d", start, length)
	}

	runes := []rune(inputs[0])
	if start > len(runes) {
		start = len(runes)
	}
	end := start + length
	if end > len(runes) {
		end = len(runes)
	}
	return op.SingleResult(string(runes[start:end])), nil
}

// repeatOp repeats the input constants[0] times.
func repeatOp(inputs, constants []string) (op.Result, error) {
	if err := requireShape("repeat", inputs, constants, 1); err != nil {
		return op.Result{}, err
	}
	count, err := intConstant("repeat", "count", constants[0])
	if err != nil {
		return op.Result{}, err
	}
	if count < 0 {
		return op.Result{}, fmt.Errorf("repeat: count must be non-negative, got %d", count)
	}
	return op.SingleResult(strings.Repeat(inputs[0], count)), nil
}

// pad builds the shared pad_left/pad_right behavior: grow the input to
// width characters using the single-character fill.
func pad(name string, inputs, constants []string, left bool) (op.Result, error) {
	if err := requireShape(name, inputs, constants, 2); err != nil {
		return op.Result{}, err
	}
	width, err := intConstant(name, "width", constants[0])
	if err != nil {
		return op.Result{}, err
	}
	fill := []rune(constants[1])
	if len(fill) != 1 {
		return op.Result{}, fmt.Errorf("%s: fill must be a single character, got %q", name, constants[1])
	}

	runes := []rune(inputs[0])
	if width <= len(runes) {
		return op.SingleResult(inputs[0]), nil
	}
	padding := strings.Repeat(string(fill), width-len(runes))
	if left {
		return op.SingleResult(padding + inputs[0]), nil
	}
	return op.SingleResult(inputs[0] + padding), nil
}

func padLeftOp(inputs, constants []string) (op.Result, error) {
	return pad("pad_left", inputs, constants, true)
}

func padRightOp(inputs, constants []string) (op.Result, error) {
	return pad("pad_right", inputs, constants, false)
}
