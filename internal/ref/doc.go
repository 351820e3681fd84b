// Package ref parses input references of the form "<node_id>" or
// "<node_id>:<index>", where the index selects one output of a
// multi-output producer.
package ref
