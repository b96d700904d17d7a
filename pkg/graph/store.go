package graph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrWouldCycle is returned by AddEdge when the proposed edge would close a
// directed cycle in the execution graph.
var ErrWouldCycle = errors.New("edge would create a cycle")

// ErrNodeNotFound is returned when a mutation references a node id that is
// not present in the store.
var ErrNodeNotFound = errors.New("node not found")

// Store is an in-memory graph store. It is the mutable source of truth the
// editor writes to; everything downstream reads copy-on-read Snapshots, so
// the pure core never observes a mutation mid-computation.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]*Node
	edges []Edge
}

// NewStore creates an empty graph store.
func NewStore() *Store {
	return &Store{
		nodes: make(map[string]*Node),
	}
}

// AddNode inserts or replaces a node.
func (s *Store) AddNode(node *Node) error {
	if node == nil || node.ID == "" {
		return fmt.Errorf("node must have an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[node.ID] = node
	return nil
}

// Node returns the node with the given id, or nil if it does not exist.
func (s *Store) Node(id string) *Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodes[id]
}

// SetParent re-parents a node under the given container. An empty parentID
// moves the node to the top level. The container is not required to exist:
// dangling ParentID references are tolerated by the core and simply resolve
// to no containment.
func (s *Store) SetParent(id, parentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, exists := s.nodes[id]
	if !exists {
		return fmt.Errorf("set parent of %q: %w", id, ErrNodeNotFound)
	}
	node.ParentID = parentID
	return nil
}

// RemoveNode deletes a node, detaches its direct children to the top level,
// and drops every edge touching it.
func (s *Store) RemoveNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[id]; !exists {
		return fmt.Errorf("remove %q: %w", id, ErrNodeNotFound)
	}
	delete(s.nodes, id)

	for _, node := range s.nodes {
		if node.ParentID == id {
			node.ParentID = ""
		}
	}

	kept := s.edges[:0]
	for _, edge := range s.edges {
		if edge.Source != id && edge.Target != id {
			kept = append(kept, edge)
		}
	}
	s.edges = kept
	return nil
}

// AddEdge commits a new edge after running the cycle check. The edge id is
// generated when absent. Returns ErrWouldCycle, leaving the edge list
// unchanged, if the connection would make the graph cyclic.
func (s *Store) AddEdge(edge Edge) (Edge, error) {
	if edge.Source == "" || edge.Target == "" {
		return Edge{}, fmt.Errorf("edge must have a source and a target")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if WouldCreateCycle(s.edges, edge.Source, edge.Target) {
		return Edge{}, fmt.Errorf("connect %s -> %s: %w", edge.Source, edge.Target, ErrWouldCycle)
	}

	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	s.edges = append(s.edges, edge)
	return edge, nil
}

// RemoveEdge deletes the edge with the given id. Removing an unknown edge is
// not an error.
func (s *Store) RemoveEdge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.edges[:0]
	for _, edge := range s.edges {
		if edge.ID != id {
			kept = append(kept, edge)
		}
	}
	s.edges = kept
}

// Snapshot returns a deep copy of the current nodes and edges. Mutating the
// store after taking a snapshot does not affect it.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make(map[string]*Node, len(s.nodes))
	for id, node := range s.nodes {
		copied := *node
		if node.Config != nil {
			copied.Config = deepCopyConfig(node.Config)
		}
		nodes[id] = &copied
	}

	edges := make([]Edge, len(s.edges))
	copy(edges, s.edges)

	return &Snapshot{Nodes: nodes, Edges: edges}
}

// deepCopyConfig copies a config payload including nested maps and slices,
// so later mutations through the store never leak into a snapshot.
func deepCopyConfig(config map[string]any) map[string]any {
	copied := make(map[string]any, len(config))
	for key, value := range config {
		copied[key] = deepCopyValue(value)
	}
	return copied
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return deepCopyConfig(v)
	case []any:
		copied := make([]any, len(v))
		for i, item := range v {
			copied[i] = deepCopyValue(item)
		}
		return copied
	default:
		// Scalars, which is everything else a decoded document can hold
		return v
	}
}
