package graph

// WouldCreateCycle reports whether adding the edge source -> target to the
// given edge list would close a directed cycle. It is a pure predicate: the
// caller is expected to invoke it before committing a new edge and reject the
// mutation when it returns true.
//
// The check is a depth-first search from target looking for a path back to
// source; if target can already reach source, the new edge completes a cycle.
// Edge endpoints that reference nonexistent nodes simply contribute no path.
func WouldCreateCycle(edges []Edge, source, target string) bool {
	// A self-loop is always a cycle
	if source == target {
		return true
	}

	// Build the adjacency map from the current edge list
	adjacency := make(map[string][]string, len(edges))
	for _, edge := range edges {
		adjacency[edge.Source] = append(adjacency[edge.Source], edge.Target)
	}

	visited := make(map[string]bool)
	stack := []string{target}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == source {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		stack = append(stack, adjacency[current]...)
	}

	return false
}
