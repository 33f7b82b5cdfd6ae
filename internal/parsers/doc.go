// Package parsers provides implementations of the Parser interface and the
// registry that selects a backend by identifier. Each backend sits at a
// different point of the speed / error-tolerance / standards-conformance
// trade-off, and all of them produce the same document tree model.
//
// Backends are registered with the Registry at startup.
package parsers
