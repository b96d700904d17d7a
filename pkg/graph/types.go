// Package graph provides the workflow graph data model: blocks, edges,
// container nesting, and the structural checks performed before a graph is
// handed to the compiler.
package graph

// Node represents a single block in the workflow graph.
type Node struct {
	// ID uniquely identifies the node within one graph
	ID string `json:"id" yaml:"id"`

	// Type is the block type discriminator (e.g. "loop", "parallel", "agent")
	Type string `json:"type" yaml:"type"`

	// ParentID is the id of the enclosing container node, or empty for
	// top-level nodes
	ParentID string `json:"parentId,omitempty" yaml:"parentId,omitempty"`

	// Config holds the type-specific configuration payload. The graph core
	// treats it as opaque except for the fields loop/parallel compilation
	// reads.
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`

	// Enabled indicates whether the node participates in execution
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Edge represents a directed connection between two nodes.
type Edge struct {
	// ID uniquely identifies the edge
	ID string `json:"id" yaml:"id"`

	// Source is the id of the node the edge starts from
	Source string `json:"source" yaml:"source"`

	// Target is the id of the node the edge points to
	Target string `json:"target" yaml:"target"`

	// SourceHandle names the connection point on the source node, when the
	// source exposes more than one
	SourceHandle string `json:"sourceHandle,omitempty" yaml:"sourceHandle,omitempty"`

	// TargetHandle names the connection point on the target node
	TargetHandle string `json:"targetHandle,omitempty" yaml:"targetHandle,omitempty"`
}

// Container node types recognized by the compiler.
const (
	TypeLoop     = "loop"
	TypeParallel = "parallel"
)

// NewNode creates a node of the given type with defaults applied.
func NewNode(id, nodeType string) *Node {
	return &Node{
		ID:      id,
		Type:    nodeType,
		Config:  make(map[string]any),
		Enabled: true,
	}
}

// IsContainerType reports whether the given block type is a loop or parallel
// container.
func IsContainerType(nodeType string) bool {
	return nodeType == TypeLoop || nodeType == TypeParallel
}

// Snapshot is an immutable view of a graph at a point in time. Every
// operation in the core is a pure function over a Snapshot, so compilation
// never observes a mutation mid-pass.
type Snapshot struct {
	// Nodes maps node id to node
	Nodes map[string]*Node `json:"nodes"`

	// Edges is the full edge list
	Edges []Edge `json:"edges"`
}
