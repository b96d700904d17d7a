package graph

import "sort"

// ChildrenOf returns the ids of nodes whose ParentID is containerID. The
// result is sorted so that repeated calls over the same node map produce the
// same order.
func ChildrenOf(containerID string, nodes map[string]*Node) []string {
	children := []string{}
	for id, node := range nodes {
		if node == nil {
			continue
		}
		if node.ParentID == containerID {
			children = append(children, id)
		}
	}
	sort.Strings(children)
	return children
}

// DescendantsOf returns the ids of every node nested under containerID, to
// arbitrary depth. A visited set bounds the walk so that a malformed cyclic
// ParentID chain terminates instead of recursing forever.
func DescendantsOf(containerID string, nodes map[string]*Node) []string {
	visited := map[string]bool{containerID: true}
	descendants := []string{}
	collectDescendants(containerID, nodes, visited, &descendants)
	return descendants
}

func collectDescendants(containerID string, nodes map[string]*Node, visited map[string]bool, out *[]string) {
	for _, childID := range ChildrenOf(containerID, nodes) {
		if visited[childID] {
			continue
		}
		visited[childID] = true
		*out = append(*out, childID)
		collectDescendants(childID, nodes, visited, out)
	}
}

// Depth returns how many containers enclose the node: 0 for top-level nodes.
// Dangling ParentID references end the walk, and a visited set bounds it on
// cyclic input.
func Depth(nodeID string, nodes map[string]*Node) int {
	depth := 0
	visited := map[string]bool{nodeID: true}

	node := nodes[nodeID]
	for node != nil && node.ParentID != "" && !visited[node.ParentID] {
		visited[node.ParentID] = true
		depth++
		node = nodes[node.ParentID]
	}
	return depth
}
