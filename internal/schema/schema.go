// Package schema defines the external graph description: the
// format-agnostic document model shared by the JSON and HCL loaders, plus
// the JSON codec that implements the system-boundary contract.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrSchema marks malformed descriptions and contradictory node shapes.
var ErrSchema = errors.New("schema error")

// Error reports a description problem, naming the offending node when one
// is known.
type Error struct {
	NodeID string
	Msg    string
}

func (e *Error) Error() string {
	if e.NodeID == "" {
		return e.Msg
	}
	return fmt.Sprintf("node '%s': %s", e.NodeID, e.Msg)
}

func (e *Error) Unwrap() error { return ErrSchema }

// Errorf builds a schema error for a node.
func Errorf(nodeID, format string, args ...any) error {
	return &Error{NodeID: nodeID, Msg: fmt.Sprintf(format, args...)}
}

// NodeDescription is one node entry of a graph description document.
// Unknown fields in the source document are ignored.
type NodeDescription struct {
	ID        string   `json:"id"`
	Type      string   `json:"type,omitempty"`
	Value     *string  `json:"value,omitempty"`
	Op        string   `json:"op,omitempty"`
	Inputs    []string `json:"inputs,omitempty"`
	Constants []string `json:"constants,omitempty"`
}

// Description is the format-agnostic graph description document.
// TargetNode is optional for library use and required by the one-shot
// execute entry point; it may carry an output index suffix (":<n>").
type Description struct {
	Nodes      []NodeDescription `json:"nodes"`
	TargetNode string            `json:"target_node,omitempty"`
}

// Loader turns an external graph document at a path into a Description.
// Implementations exist for JSON (this package) and HCL (hclgraph).
type Loader interface {
	Load(ctx context.Context, path string) (*Description, error)
}

// ParseJSON decodes a JSON graph description document.
func ParseJSON(data []byte) (*Description, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &Error{Msg: fmt.Sprintf("malformed JSON document: %v", err)}
	}
	if _, ok := probe["nodes"]; !ok {
		return nil, &Error{Msg: "document missing 'nodes' field"}
	}

	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, &Error{Msg: fmt.Sprintf("malformed JSON document: %v", err)}
	}
	for _, n := range desc.Nodes {
		if n.ID == "" {
			return nil, &Error{Msg: "node missing required 'id' field"}
		}
	}
	return &desc, nil
}

// JSONLoader loads JSON graph description files.
type JSONLoader struct{}

// NewJSONLoader creates a JSON description loader.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Load reads and decodes the JSON document at path.
func (l *JSONLoader) Load(ctx context.Context, path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph description %s: %w", path, err)
	}
	return ParseJSON(data)
}
