package ref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidReference marks malformed input references.
var ErrInvalidReference = errors.New("invalid reference")

// InvalidReferenceError reports a reference that could not be parsed. Raw
// preserves the original reference string for caller diagnostics.
type InvalidReferenceError struct {
	Raw    string
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: %s", e.Raw, e.Reason)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

// Ref is a parsed input reference. Index is -1 when no output index was
// given.
type Ref struct {
	NodeID string
	Index  int
}

// HasIndex reports whether the reference selects one output of a
// multi-output producer.
func (r Ref) HasIndex() bool { return r.Index >= 0 }

// String serializes the reference back to its canonical form.
func (r Ref) String() string {
	if !r.HasIndex() {
		return r.NodeID
	}
	return fmt.Sprintf("%s:%d", r.NodeID, r.Index)
}

// Parse splits a raw reference into node id and optional output index.
// A colon with an empty or non-numeric tail is rejected.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, &InvalidReferenceError{Raw: raw, Reason: "empty reference"}
	}

	id, tail, found := strings.Cut(raw, ":")
	if !found {
		return Ref{NodeID: raw, Index: -1}, nil
	}
	if id == "" {
		return Ref{}, &InvalidReferenceError{Raw: raw, Reason: "empty node id"}
	}
	if tail == "" {
		return Ref{}, &InvalidReferenceError{Raw: raw, Reason: "empty output index"}
	}
	for _, c := range tail {
		if c < '0' || c > '9' {
			return Ref{}, &InvalidReferenceError{Raw: raw, Reason: fmt.Sprintf("non-numeric output index %q", tail)}
		}
	}
	index, err := strconv.Atoi(tail)
	if err != nil {
		return Ref{}, &InvalidReferenceError{Raw: raw, Reason: fmt.Sprintf("output index %q out of range", tail)}
	}

	return Ref{NodeID: id, Index: index}, nil
}
