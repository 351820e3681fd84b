// Package hclgraph loads graph descriptions from HCL files.
//
// The HCL surface mirrors the JSON contract: top-level `node "<id>"`
// blocks with optional type, value, op, inputs, and constants, plus an
// optional `target` attribute. Constants accept any primitive values and
// are converted to strings, so `constants = [1, ","]` works the way an
// HCL author expects.
package hclgraph
