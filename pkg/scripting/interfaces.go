// Package scripting provides syntax checking for the expression strings
// stored in container configuration. The core never evaluates expressions;
// this is a pre-flight lint surface for the editor and CLI.
package scripting

import "github.com/tcmartin/flowgraph/pkg/compiler"

// ExpressionLinter checks stored expressions for syntax errors without
// evaluating them.
type ExpressionLinter interface {
	// CheckSyntax returns an error when the expression does not parse.
	// Empty expressions pass: an unset condition is not a lint failure.
	CheckSyntax(expression string) error

	// LintLoop checks every expression field of a loop descriptor
	LintLoop(loop *compiler.Loop) []error

	// LintParallel checks the distribution expression of a parallel
	// descriptor
	LintParallel(parallel *compiler.Parallel) []error
}
