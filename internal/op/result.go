package op

import (
	"fmt"
	"strings"
)

// Result is the output of an Operation: either a single string or an
// ordered sequence of strings (multi-output). The zero value is a single
// empty string.
type Result struct {
	values []string
	multi  bool
}

// SingleResult wraps one string as a single-output result.
func SingleResult(value string) Result {
	return Result{values: []string{value}}
}

// MultiResult wraps an ordered sequence of strings as a multi-output
// result. The slice is retained; callers must not mutate it afterwards.
func MultiResult(values []string) Result {
	return Result{values: values, multi: true}
}

// IsMulti reports whether the result is a multi-output sequence.
func (r Result) IsMulti() bool { return r.multi }

// Value returns the single output. ok is false for multi-output results.
func (r Result) Value() (value string, ok bool) {
	if r.multi {
		return "", false
	}
	if len(r.values) == 0 {
		return "", true
	}
	return r.values[0], true
}

// Values returns the output sequence. ok is false for single-output results.
func (r Result) Values() (values []string, ok bool) {
	if !r.multi {
		return nil, false
	}
	return r.values, true
}

// Len returns the number of outputs: 1 for single, the sequence length
// for multi.
func (r Result) Len() int {
	if !r.multi {
		return 1
	}
	return len(r.values)
}

// String renders the result for logs.
func (r Result) String() string {
	if r.multi {
		return fmt.Sprintf("[%s]", strings.Join(r.values, ", "))
	}
	v, _ := r.Value()
	return v
}
