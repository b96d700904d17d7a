package loader

// GraphDefinition is the document shape the editor exports: metadata, a map
// of node ids to node definitions, and an edge list.
type GraphDefinition struct {
	// Metadata contains graph metadata
	Metadata GraphMetadata `yaml:"metadata" json:"metadata"`

	// Nodes maps node id to definition
	Nodes map[string]NodeDefinition `yaml:"nodes" json:"nodes"`

	// Edges lists directed connections between nodes
	Edges []EdgeDefinition `yaml:"edges" json:"edges"`
}

// GraphMetadata contains descriptive information about a graph
type GraphMetadata struct {
	// Name of the graph
	Name string `yaml:"name" json:"name"`

	// Description of the graph
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Version of the graph definition
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// NodeDefinition describes a single block
type NodeDefinition struct {
	// Type is the block type (e.g. "loop", "parallel", "agent")
	Type string `yaml:"type" json:"type"`

	// ParentID nests the node inside a container
	ParentID string `yaml:"parentId,omitempty" json:"parentId,omitempty"`

	// Config is the type-specific configuration payload
	Config map[string]any `yaml:"config,omitempty" json:"config,omitempty"`

	// Enabled defaults to true when omitted
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// EdgeDefinition describes a directed connection
type EdgeDefinition struct {
	// ID is optional; one is generated when omitted
	ID string `yaml:"id,omitempty" json:"id,omitempty"`

	// Source node id
	Source string `yaml:"source" json:"source"`

	// Target node id
	Target string `yaml:"target" json:"target"`

	// SourceHandle names the source connection point
	SourceHandle string `yaml:"sourceHandle,omitempty" json:"sourceHandle,omitempty"`

	// TargetHandle names the target connection point
	TargetHandle string `yaml:"targetHandle,omitempty" json:"targetHandle,omitempty"`
}
