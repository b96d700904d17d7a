package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcmartin/flowgraph/pkg/compiler"
	"github.com/tcmartin/flowgraph/pkg/graph"
)

func loopNode(id string, config map[string]any) *graph.Node {
	return &graph.Node{ID: id, Type: graph.TypeLoop, Config: config, Enabled: true}
}

func TestCompileLoop_Defaults(t *testing.T) {
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", nil),
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)

	assert.Equal(t, "L1", loop.ID)
	assert.Equal(t, compiler.LoopTypeFor, loop.LoopType)
	assert.Equal(t, 5, loop.Iterations)
	assert.Equal(t, "", loop.ForEachItems)
	assert.Equal(t, "", loop.WhileCondition)
	assert.Equal(t, "", loop.DoWhileCondition)
	assert.Empty(t, loop.Nodes)
	assert.True(t, loop.Enabled)
}

func TestCompileLoop_AbsentOnMissingOrWrongType(t *testing.T) {
	nodes := map[string]*graph.Node{
		"agent": {ID: "agent", Type: "agent", Enabled: true},
	}

	assert.Nil(t, compiler.CompileLoop("missing", nodes))
	assert.Nil(t, compiler.CompileLoop("agent", nodes))
}

func TestCompileLoop_PreservesInactiveBranches(t *testing.T) {
	// A user configured a while condition, then switched to a for loop:
	// neither value may be lost
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", map[string]any{
			"loopType":       "for",
			"iterations":     3,
			"whileCondition": "x > 1",
		}),
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)

	assert.Equal(t, compiler.LoopTypeFor, loop.LoopType)
	assert.Equal(t, 3, loop.Iterations)
	assert.Equal(t, "x > 1", loop.WhileCondition)
}

func TestCompileLoop_InvalidTypeFallsBackToFor(t *testing.T) {
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", map[string]any{"loopType": "bogus"}),
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)
	assert.Equal(t, compiler.LoopTypeFor, loop.LoopType)
}

func TestCompileLoop_ForEachLiteralArray(t *testing.T) {
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", map[string]any{
			"loopType":   "forEach",
			"collection": "[1, 2, 3]",
		}),
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, loop.ForEachItems)
}

func TestCompileLoop_ForEachLiteralObject(t *testing.T) {
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", map[string]any{
			"loopType":   "forEach",
			"collection": `{"a": 1}`,
		}),
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)
	assert.Equal(t, map[string]any{"a": float64(1)}, loop.ForEachItems)
}

func TestCompileLoop_ForEachExpressionKeptVerbatim(t *testing.T) {
	// Unparsable or non-bracket values are presumed to be runtime-evaluated
	// expressions and kept verbatim
	cases := []string{
		"{{var}}",
		"items.results",
		"[not valid",
	}

	for _, collection := range cases {
		nodes := map[string]*graph.Node{
			"L1": loopNode("L1", map[string]any{
				"loopType":   "forEach",
				"collection": collection,
			}),
		}

		loop := compiler.CompileLoop("L1", nodes)
		require.NotNil(t, loop)
		assert.Equal(t, collection, loop.ForEachItems)
	}
}

func TestCompileLoop_ForEachStructuredValuePassesThrough(t *testing.T) {
	// An already-structured collection (e.g. loaded from YAML) is not
	// re-parsed
	items := []any{"a", "b"}
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", map[string]any{
			"loopType":   "forEach",
			"collection": items,
		}),
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)
	assert.Equal(t, items, loop.ForEachItems)
}

func TestCompileLoop_IterationsCoercion(t *testing.T) {
	cases := map[string]struct {
		raw  any
		want int
	}{
		"int":            {3, 3},
		"float":          {float64(7), 7},
		"numeric string": {"12", 12},
		"garbage string": {"twelve", 5},
		"unset":          {nil, 5},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			config := map[string]any{}
			if tc.raw != nil {
				config["iterations"] = tc.raw
			}
			loop := compiler.CompileLoop("L1", map[string]*graph.Node{
				"L1": loopNode("L1", config),
			})
			require.NotNil(t, loop)
			assert.Equal(t, tc.want, loop.Iterations)
		})
	}
}

func TestCompileLoop_ChildrenAndEnabled(t *testing.T) {
	nodes := map[string]*graph.Node{
		"L1": {ID: "L1", Type: graph.TypeLoop, Enabled: false},
		"S1": {ID: "S1", Type: "agent", ParentID: "L1", Enabled: true},
		"S2": {ID: "S2", Type: "agent", ParentID: "L1", Enabled: true},
		"S3": {ID: "S3", Type: "agent", Enabled: true},
	}

	loop := compiler.CompileLoop("L1", nodes)
	require.NotNil(t, loop)
	assert.Equal(t, []string{"S1", "S2"}, loop.Nodes)
	assert.False(t, loop.Enabled)
}

func TestCompileLoop_Idempotent(t *testing.T) {
	nodes := map[string]*graph.Node{
		"L1": loopNode("L1", map[string]any{
			"loopType":   "forEach",
			"collection": `["a", "b"]`,
			"iterations": 9,
		}),
		"S1": {ID: "S1", Type: "agent", ParentID: "L1", Enabled: true},
	}

	first := compiler.CompileLoop("L1", nodes)
	second := compiler.CompileLoop("L1", nodes)
	assert.Equal(t, first, second)
}
