// Package coreops registers the core built-in string operations:
// identity, concat, reverse, to_upper, and to_lower.
package coreops

import (
	"fmt"
	"strings"

	"github.com/vk/strgraphgo/internal/op"
)

// Module registers the core operation set.
type Module struct{}

// Register implements op.Module.
func (m *Module) Register(r *op.Registry) {
	r.Register("identity", identityOp)
	r.Register("concat", concatOp)
	r.Register("reverse", reverseOp)
	r.Register("to_upper", toUpperOp)
	r.Register("to_lower", toLowerOp)
}

// requireUnary rejects any argument shape other than one input and no
// constants.
func requireUnary(name string, inputs, constants []string) error {
	if len(inputs) != 1 || len(constants) != 0 {
		return fmt.Errorf("%s requires exactly one input and no constants, got %d inputs and %d constants",
			name, len(inputs), len(constants))
	}
	return nil
}

// identityOp echoes its single input.
func identityOp(inputs, constants []string) (op.Result, error) {
	if err := requireUnary("identity", inputs, constants); err != nil {
		return op.Result{}, err
	}
	return op.SingleResult(inputs[0]), nil
}

// concatOp appends all inputs, then all constants.
func concatOp(inputs, constants []string) (op.Result, error) {
	var sb strings.Builder
	total := 0
	for _, s := range inputs {
		total += len(s)
	}
	for _, s := range constants {
		total += len(s)
	}
	sb.Grow(total)
	for _, s := range inputs {
		sb.WriteString(s)
	}
	for _, s := range constants {
		sb.WriteString(s)
	}
	return op.SingleResult(sb.String()), nil
}

// reverseOp reverses its single input rune-wise.
func reverseOp(inputs, constants []string) (op.Result, error) {
	if err := requireUnary("reverse", inputs, constants); err != nil {
		return op.Result{}, err
	}
	runes := []rune(inputs[0])
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return op.SingleResult(string(runes)), nil
}

func toUpperOp(inputs, constants []string) (op.Result, error) {
	if err := requireUnary("to_upper", inputs, constants); err != nil {
		return op.Result{}, err
	}
	return op.SingleResult(strings.ToUpper(inputs[0])), nil
}

func toLowerOp(inputs, constants []string) (op.Result, error) {
	if err := requireUnary("to_lower", inputs, constants); err != nil {
		return op.Result{}, err
	}
	return op.SingleResult(strings.ToLower(inputs[0])), nil
}
