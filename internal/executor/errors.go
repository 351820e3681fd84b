package executor

import (
	"errors"
	"fmt"
)

// ErrCycleDetected marks a dependency cycle reachable from the target.
var ErrCycleDetected = errors.New("cycle detected")

// CycleError reports a back-edge found while computing, naming a node on
// the cycle.
type CycleError struct {
	NodeID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected involving node '%s'", e.NodeID)
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// ErrMissingPlaceholder marks a reached placeholder with no feed entry.
var ErrMissingPlaceholder = errors.New("missing placeholder value")

// MissingPlaceholderError reports a placeholder node that was reached
// without a feed dictionary entry.
type MissingPlaceholderError struct {
	NodeID string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("placeholder '%s' has no value in the feed dictionary", e.NodeID)
}

func (e *MissingPlaceholderError) Unwrap() error { return ErrMissingPlaceholder }

// ErrTypeMismatch marks a single-vs-multi output mismatch on a reference.
var ErrTypeMismatch = errors.New("result type mismatch")

// TypeMismatchError reports a reference that consumed a producer as the
// wrong result variant. Ref preserves the original reference string.
type TypeMismatchError struct {
	NodeID string
	Ref    string
	Msg    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("reference %q to node '%s': %s", e.Ref, e.NodeID, e.Msg)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ErrIndexOutOfBounds marks an output index beyond the producer's result.
var ErrIndexOutOfBounds = errors.New("output index out of bounds")

// IndexOutOfBoundsError reports an indexed reference that selects past the
// end of a multi-output result.
type IndexOutOfBoundsError struct {
	NodeID string
	Ref    string
	Index  int
	Len    int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("reference %q: output index %d out of bounds for node '%s' with %d outputs",
		e.Ref, e.Index, e.NodeID, e.Len)
}

func (e *IndexOutOfBoundsError) Unwrap() error { return ErrIndexOutOfBounds }
