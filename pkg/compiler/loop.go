package compiler

import (
	"github.com/tcmartin/flowgraph/pkg/graph"
)

// CompileLoop projects the node with the given id into a Loop descriptor.
// Returns nil when the node does not exist or is not a loop container:
// compilation is called opportunistically over a mixed bag of node types, so
// absence is not an error.
func CompileLoop(nodeID string, nodes map[string]*graph.Node) *Loop {
	node, exists := nodes[nodeID]
	if !exists || node == nil || node.Type != graph.TypeLoop {
		return nil
	}

	loopType := LoopType(configString(node.Config, keyLoopType))
	switch loopType {
	case LoopTypeFor, LoopTypeForEach, LoopTypeWhile, LoopTypeDoWhile:
	default:
		loopType = LoopTypeFor
	}

	// Every iteration-control field is populated regardless of the active
	// loop type, so switching types in the editor never loses configuration.
	return &Loop{
		ID:               node.ID,
		Nodes:            graph.ChildrenOf(node.ID, nodes),
		LoopType:         loopType,
		Iterations:       configInt(node.Config, keyIterations, DefaultIterations),
		ForEachItems:     parseCollection(node.Config[keyCollection]),
		WhileCondition:   configString(node.Config, keyWhileCondition),
		DoWhileCondition: configString(node.Config, keyDoWhileCondition),
		Enabled:          node.Enabled,
	}
}

// CompileLoops compiles every loop container in the node map into an
// id-indexed descriptor table.
func CompileLoops(nodes map[string]*graph.Node) map[string]*Loop {
	loops := make(map[string]*Loop)
	for id, node := range nodes {
		if node == nil || node.Type != graph.TypeLoop {
			continue
		}
		if loop := CompileLoop(id, nodes); loop != nil {
			loops[id] = loop
		}
	}
	return loops
}
