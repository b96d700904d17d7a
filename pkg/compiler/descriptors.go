// Package compiler turns loop and parallel container nodes into the
// normalized descriptors the execution engine consumes. Compilation is a pure
// projection over a graph snapshot: it never mutates the graph, never
// evaluates expressions, and recomputes cheaply on every request.
package compiler

// LoopType identifies the iteration strategy of a loop container.
type LoopType string

// Supported loop types.
const (
	LoopTypeFor     LoopType = "for"
	LoopTypeForEach LoopType = "forEach"
	LoopTypeWhile   LoopType = "while"
	LoopTypeDoWhile LoopType = "doWhile"
)

// ParallelType identifies the fan-out strategy of a parallel container.
type ParallelType string

// Supported parallel types.
const (
	ParallelTypeCollection ParallelType = "collection"
	ParallelTypeCount      ParallelType = "count"
)

// DefaultIterations is the iteration/branch count used when a container does
// not configure one.
const DefaultIterations = 5

// Loop is the executor-facing descriptor compiled from a loop container
// node. All four iteration-control fields are always populated regardless of
// the active LoopType: the editor lets a user flip between loop types without
// re-entering values, and the compiler must not discard the inactive
// branches' configuration.
type Loop struct {
	// ID is the loop node's id
	ID string `json:"id"`

	// Nodes lists the direct child node ids of the container
	Nodes []string `json:"nodes"`

	// LoopType selects the iteration strategy
	LoopType LoopType `json:"loopType"`

	// Iterations is the fixed iteration count, used when LoopType is "for"
	Iterations int `json:"iterations"`

	// ForEachItems is either a parsed literal collection or an unevaluated
	// expression string, used when LoopType is "forEach"
	ForEachItems any `json:"forEachItems"`

	// WhileCondition is the unevaluated condition expression, used when
	// LoopType is "while"
	WhileCondition string `json:"whileCondition"`

	// DoWhileCondition is the unevaluated condition expression, used when
	// LoopType is "doWhile"
	DoWhileCondition string `json:"doWhileCondition"`

	// Enabled mirrors the container node's enabled flag
	Enabled bool `json:"enabled"`
}

// Parallel is the executor-facing descriptor compiled from a parallel
// container node.
type Parallel struct {
	// ID is the parallel node's id
	ID string `json:"id"`

	// Nodes lists the direct child node ids of the container
	Nodes []string `json:"nodes"`

	// ParallelType selects the fan-out strategy
	ParallelType ParallelType `json:"parallelType"`

	// Distribution is the collection configuration driving the fan-out; only
	// populated when ParallelType is "collection"
	Distribution any `json:"distribution,omitempty"`

	// Count is the fixed branch count, used when ParallelType is "count"
	Count int `json:"count"`

	// Enabled mirrors the container node's enabled flag
	Enabled bool `json:"enabled"`
}
