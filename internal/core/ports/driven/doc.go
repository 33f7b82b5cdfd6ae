// Package driven defines interfaces for capabilities the core depends on:
// parser backends, configuration storage, and output post-processing.
// These are the "driven" ports in hexagonal architecture terminology -
// the application drives them.
//
// Implementations live in internal/parsers, internal/postprocessors, and
// internal/adapters/driven.
package driven
