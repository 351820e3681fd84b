// Package op defines the operation ABI for the string computation graph:
// the Operation function type, the single/multi output Result variant, and
// the Registry that maps operation names to implementations.
//
// The Registry is populated during startup and read during execution.
// Registration replaces any prior binding for the same name, so test code
// can shadow built-ins without tearing the registry down.
package op
