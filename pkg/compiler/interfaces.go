package compiler

import (
	"context"

	"github.com/tcmartin/flowgraph/pkg/graph"
)

// Executor consumes a compiled IR and runs the graph. The execution engine
// lives outside this module; the interface pins down the handoff contract.
type Executor interface {
	// Execute runs the compiled graph until completion or context
	// cancellation
	Execute(ctx context.Context, ir *IR) error
}

// Compiler produces an IR from a graph snapshot. Implemented by
// CompilerFunc(Compile) and by CachingCompiler.
type Compiler interface {
	// Compile builds the descriptor tables for the given snapshot
	Compile(snapshot *graph.Snapshot) *IR
}

// CompilerFunc adapts a plain function to the Compiler interface.
type CompilerFunc func(snapshot *graph.Snapshot) *IR

// Compile implements Compiler.
func (f CompilerFunc) Compile(snapshot *graph.Snapshot) *IR {
	return f(snapshot)
}
