// Package listops registers operations over string sequences: the
// multi-output split, its inverse join, and word_count.
package listops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/strgraphgo/internal/op"
)

// Module registers the sequence operation set.
type Module struct{}

// Register implements op.Module.
func (m *Module) Register(r *op.Registry) {
	r.Register("split", splitOp)
	r.Register("join", joinOp)
	r.Register("word_count", wordCountOp)
}

// splitOp cuts its single input at every occurrence of the delimiter
// constant. An empty delimiter splits into characters; a delimiter that
// never matches yields the whole input as a single element.
func splitOp(inputs, constants []string) (op.Result, error) {
	if len(inputs) != 1 || len(constants) != 1 {
		return op.Result{}, fmt.Errorf("split requires exactly one input and one delimiter constant, got %d inputs and %d constants",
			len(inputs), len(constants))
	}

	text, delimiter := inputs[0], constants[0]
	if delimiter == "" {
		runes := []rune(text)
		parts := make([]string, len(runes))
		for i, r := range runes {
			parts[i] = string(r)
		}
		return op.MultiResult(parts), nil
	}
	return op.MultiResult(strings.Split(text, delimiter)), nil
}

// joinOp concatenates all inputs with the separator constant between them.
func joinOp(inputs, constants []string) (op.Result, error) {
	if len(constants) != 1 {
		return op.Result{}, fmt.Errorf("join requires exactly one separator constant, got %d", len(constants))
	}
	return op.SingleResult(strings.Join(inputs, constants[0])), nil
}

// wordCountOp counts whitespace-separated words in its single input.
func wordCountOp(inputs, constants []string) (op.Result, error) {
	if len(inputs) != 1 || len(constants) != 0 {
		return op.Result{}, fmt.Errorf("word_count requires exactly one input and no constants, got %d inputs and %d constants",
			len(inputs), len(constants))
	}
	return op.SingleResult(strconv.Itoa(len(strings.Fields(inputs[0])))), nil
}
