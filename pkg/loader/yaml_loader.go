// Package loader parses workflow graph documents into graph snapshots.
package loader

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tcmartin/flowgraph/pkg/graph"
)

// ErrInvalidDocument wraps every structural validation failure.
var ErrInvalidDocument = errors.New("invalid graph document")

// DefaultGraphLoader implements the GraphLoader interface over YAML
// documents. JSON documents also parse, since YAML is a superset.
type DefaultGraphLoader struct{}

// NewGraphLoader creates a new graph loader
func NewGraphLoader() GraphLoader {
	return &DefaultGraphLoader{}
}

// Parse converts a YAML document into a graph snapshot
func (l *DefaultGraphLoader) Parse(content string) (*graph.Snapshot, error) {
	definition, err := l.decode(content)
	if err != nil {
		return nil, err
	}
	if _, err := validateDefinition(definition); err != nil {
		return nil, err
	}

	nodes := make(map[string]*graph.Node, len(definition.Nodes))
	for id, def := range definition.Nodes {
		enabled := true
		if def.Enabled != nil {
			enabled = *def.Enabled
		}
		config := def.Config
		if config == nil {
			config = make(map[string]any)
		}
		nodes[id] = &graph.Node{
			ID:       id,
			Type:     def.Type,
			ParentID: def.ParentID,
			Config:   config,
			Enabled:  enabled,
		}
	}

	edges := make([]graph.Edge, 0, len(definition.Edges))
	for _, def := range definition.Edges {
		id := def.ID
		if id == "" {
			id = uuid.New().String()
		}
		edges = append(edges, graph.Edge{
			ID:           id,
			Source:       def.Source,
			Target:       def.Target,
			SourceHandle: def.SourceHandle,
			TargetHandle: def.TargetHandle,
		})
	}

	return &graph.Snapshot{Nodes: nodes, Edges: edges}, nil
}

// Validate checks a YAML document against the structural rules without
// building a snapshot. Conditions the core tolerates come back as warnings.
func (l *DefaultGraphLoader) Validate(content string) ([]string, error) {
	definition, err := l.decode(content)
	if err != nil {
		return nil, err
	}
	return validateDefinition(definition)
}

func (l *DefaultGraphLoader) decode(content string) (*GraphDefinition, error) {
	var definition GraphDefinition
	if err := yaml.Unmarshal([]byte(content), &definition); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &definition, nil
}

func validateDefinition(definition *GraphDefinition) ([]string, error) {
	if definition.Metadata.Name == "" {
		return nil, fmt.Errorf("%w: graph name is required", ErrInvalidDocument)
	}
	if len(definition.Nodes) == 0 {
		return nil, fmt.Errorf("%w: graph must have at least one node", ErrInvalidDocument)
	}

	var warnings []string
	for id, node := range definition.Nodes {
		if node.Type == "" {
			return nil, fmt.Errorf("%w: node %q has no type", ErrInvalidDocument, id)
		}
		if node.ParentID != "" {
			parent, exists := definition.Nodes[node.ParentID]
			if !exists {
				return nil, fmt.Errorf("%w: node %q references unknown parent %q", ErrInvalidDocument, id, node.ParentID)
			}
			// The core resolves containment only for container nodes, so a
			// non-container parent is effectively no containment. The
			// document still loads.
			if !graph.IsContainerType(parent.Type) {
				warnings = append(warnings, fmt.Sprintf("node %q has non-container parent %q; containment will be ignored", id, node.ParentID))
			}
		}
	}

	// Edges are admitted one at a time through the same cycle gate the
	// editor uses, so a cyclic document is rejected at the first offending
	// edge.
	admitted := make([]graph.Edge, 0, len(definition.Edges))
	for i, edge := range definition.Edges {
		if edge.Source == "" || edge.Target == "" {
			return nil, fmt.Errorf("%w: edge %d is missing a source or target", ErrInvalidDocument, i)
		}
		if _, exists := definition.Nodes[edge.Source]; !exists {
			return nil, fmt.Errorf("%w: edge %d references unknown source %q", ErrInvalidDocument, i, edge.Source)
		}
		if _, exists := definition.Nodes[edge.Target]; !exists {
			return nil, fmt.Errorf("%w: edge %d references unknown target %q", ErrInvalidDocument, i, edge.Target)
		}
		if graph.WouldCreateCycle(admitted, edge.Source, edge.Target) {
			return nil, fmt.Errorf("%w: edge %s -> %s would create a cycle", ErrInvalidDocument, edge.Source, edge.Target)
		}
		admitted = append(admitted, graph.Edge{ID: edge.ID, Source: edge.Source, Target: edge.Target})
	}

	return warnings, nil
}
