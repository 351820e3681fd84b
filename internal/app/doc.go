// Package app wires the engine into a runnable application: configuration,
// an isolated logger, the operation registry with its built-in modules,
// the description loaders, the compiled graph, and the optional ops HTTP
// server.
package app
