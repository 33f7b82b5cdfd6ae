// Package domain contains the core types of the detagging pipeline:
// the removal rule set and the helpers that inspect document tree nodes.
// Domain types carry no I/O; they operate on trees the parser ports produce.
package domain
