package loader

import "github.com/tcmartin/flowgraph/pkg/graph"

// GraphLoader parses editor-exported graph documents into snapshots the
// compiler can consume.
type GraphLoader interface {
	// Parse converts a YAML document into a graph snapshot
	Parse(content string) (*graph.Snapshot, error)

	// Validate checks a YAML document against the structural rules without
	// building a snapshot. Conditions the core tolerates (such as a parent
	// reference to a non-container node) come back as warnings, not errors.
	Validate(content string) ([]string, error)
}
