package compiler

import (
	"github.com/tcmartin/flowgraph/pkg/graph"
)

// IR is the intermediate representation handed to the execution engine: the
// original graph unchanged, plus the compiled container descriptor tables.
// The executor treats Loops and Parallels as id-indexed lookup tables, not
// sequences.
type IR struct {
	// Nodes is the full node map, containers included
	Nodes map[string]*graph.Node `json:"nodes"`

	// Edges is the full edge list
	Edges []graph.Edge `json:"edges"`

	// Loops maps loop node id to its compiled descriptor
	Loops map[string]*Loop `json:"loops"`

	// Parallels maps parallel node id to its compiled descriptor
	Parallels map[string]*Parallel `json:"parallels"`
}

// Compile produces the IR for a graph snapshot. It is a pure function:
// compiling the same snapshot twice yields structurally identical results,
// and no state is carried between calls.
func Compile(snapshot *graph.Snapshot) *IR {
	if snapshot == nil {
		return &IR{
			Nodes:     map[string]*graph.Node{},
			Loops:     map[string]*Loop{},
			Parallels: map[string]*Parallel{},
		}
	}

	return &IR{
		Nodes:     snapshot.Nodes,
		Edges:     snapshot.Edges,
		Loops:     CompileLoops(snapshot.Nodes),
		Parallels: CompileParallels(snapshot.Nodes),
	}
}
