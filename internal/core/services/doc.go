// Package services implements the driving ports. The detag service
// orchestrates the pipeline: rule construction, parser selection, tree
// filtering, serialization, and output post-processing.
package services
