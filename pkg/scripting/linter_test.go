package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcmartin/flowgraph/pkg/compiler"
	"github.com/tcmartin/flowgraph/pkg/scripting"
)

func TestCheckSyntax_ValidExpressions(t *testing.T) {
	linter := scripting.NewExpressionLinter()

	valid := []string{
		"",
		"   ",
		"x > 1",
		"${x > 1}",
		"{{index}} < 10",
		"items.results",
		"a && (b || c)",
		`{"a": 1}`,
	}
	for _, expr := range valid {
		assert.NoError(t, linter.CheckSyntax(expr), "expression: %q", expr)
	}
}

func TestCheckSyntax_InvalidExpressions(t *testing.T) {
	linter := scripting.NewExpressionLinter()

	invalid := []string{
		"x >",
		"${x ||}",
		"{{a &&}}",
		"((",
	}
	for _, expr := range invalid {
		assert.Error(t, linter.CheckSyntax(expr), "expression: %q", expr)
	}
}

func TestLintLoop_ChecksOnlyActiveBranch(t *testing.T) {
	linter := scripting.NewExpressionLinter()

	// The inactive doWhile branch holds garbage, but the active while
	// condition is valid
	loop := &compiler.Loop{
		ID:               "L1",
		LoopType:         compiler.LoopTypeWhile,
		WhileCondition:   "count < 3",
		DoWhileCondition: "((",
	}
	assert.Empty(t, linter.LintLoop(loop))

	loop.LoopType = compiler.LoopTypeDoWhile
	assert.Len(t, linter.LintLoop(loop), 1)
}

func TestLintLoop_ForEachExpressionString(t *testing.T) {
	linter := scripting.NewExpressionLinter()

	loop := &compiler.Loop{
		ID:           "L1",
		LoopType:     compiler.LoopTypeForEach,
		ForEachItems: "results.items",
	}
	assert.Empty(t, linter.LintLoop(loop))

	// Parsed literal collections are not expressions
	loop.ForEachItems = []any{"a", "b"}
	assert.Empty(t, linter.LintLoop(loop))

	loop.ForEachItems = "not ((( valid"
	assert.Len(t, linter.LintLoop(loop), 1)
}

func TestLintParallel(t *testing.T) {
	linter := scripting.NewExpressionLinter()

	parallel := &compiler.Parallel{
		ID:           "P1",
		ParallelType: compiler.ParallelTypeCollection,
		Distribution: "{{results}}",
	}
	assert.Empty(t, linter.LintParallel(parallel))

	parallel.Distribution = "x ||"
	assert.Len(t, linter.LintParallel(parallel), 1)

	// Count-driven parallels carry no distribution to lint
	parallel.ParallelType = compiler.ParallelTypeCount
	assert.Empty(t, linter.LintParallel(parallel))

	assert.Empty(t, linter.LintParallel(nil))
}
