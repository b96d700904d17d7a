package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcmartin/flowgraph/pkg/graph"
)

func TestNewNode_Defaults(t *testing.T) {
	node := graph.NewNode("n1", "agent")

	assert.Equal(t, "n1", node.ID)
	assert.Equal(t, "agent", node.Type)
	assert.True(t, node.Enabled)
	assert.NotNil(t, node.Config)
	assert.Empty(t, node.ParentID)
}

func TestIsContainerType(t *testing.T) {
	assert.True(t, graph.IsContainerType(graph.TypeLoop))
	assert.True(t, graph.IsContainerType(graph.TypeParallel))
	assert.False(t, graph.IsContainerType("agent"))
	assert.False(t, graph.IsContainerType(""))
}
