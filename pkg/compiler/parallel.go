package compiler

import (
	"github.com/tcmartin/flowgraph/pkg/graph"
)

// CompileParallel projects the node with the given id into a Parallel
// descriptor. Returns nil when the node does not exist or is not a parallel
// container.
func CompileParallel(nodeID string, nodes map[string]*graph.Node) *Parallel {
	node, exists := nodes[nodeID]
	if !exists || node == nil || node.Type != graph.TypeParallel {
		return nil
	}

	// An absent type defaults to "count"; an unrecognized stored value falls
	// back to "collection". The asymmetry is long-standing observed behavior
	// that the executor depends on, so it is preserved as-is.
	parallelType := ParallelTypeCount
	if stored := configString(node.Config, keyParallelType); stored != "" {
		switch ParallelType(stored) {
		case ParallelTypeCollection, ParallelTypeCount:
			parallelType = ParallelType(stored)
		default:
			parallelType = ParallelTypeCollection
		}
	}

	parallel := &Parallel{
		ID:           node.ID,
		Nodes:        graph.ChildrenOf(node.ID, nodes),
		ParallelType: parallelType,
		Count:        configInt(node.Config, keyCount, DefaultIterations),
		Enabled:      node.Enabled,
	}

	// The distribution only matters for collection-driven fan-out
	if parallelType == ParallelTypeCollection {
		parallel.Distribution = node.Config[keyCollection]
	}

	return parallel
}

// CompileParallels compiles every parallel container in the node map into an
// id-indexed descriptor table.
func CompileParallels(nodes map[string]*graph.Node) map[string]*Parallel {
	parallels := make(map[string]*Parallel)
	for id, node := range nodes {
		if node == nil || node.Type != graph.TypeParallel {
			continue
		}
		if parallel := CompileParallel(id, nodes); parallel != nil {
			parallels[id] = parallel
		}
	}
	return parallels
}
