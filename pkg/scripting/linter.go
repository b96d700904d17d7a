package scripting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dop251/goja"

	"github.com/tcmartin/flowgraph/pkg/compiler"
)

// templatePattern matches {{...}} interpolation segments.
var templatePattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// GojaLinter implements ExpressionLinter using the goja compiler. Only the
// compile step runs; no script is ever executed.
type GojaLinter struct{}

// NewExpressionLinter creates a new expression linter
func NewExpressionLinter() ExpressionLinter {
	return &GojaLinter{}
}

// CheckSyntax returns an error when the expression does not parse. Empty
// expressions pass. Both `${expr}` wrappers and `{{expr}}` interpolation
// segments are unwrapped before the check.
func (l *GojaLinter) CheckSyntax(expression string) error {
	trimmed := strings.TrimSpace(expression)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "${") && strings.HasSuffix(trimmed, "}") {
		return l.compile(trimmed[2 : len(trimmed)-1])
	}

	if matches := templatePattern.FindAllStringSubmatch(trimmed, -1); matches != nil {
		for _, match := range matches {
			if err := l.compile(match[1]); err != nil {
				return err
			}
		}
		return nil
	}

	return l.compile(trimmed)
}

// LintLoop checks the expression fields relevant to the loop's active type
func (l *GojaLinter) LintLoop(loop *compiler.Loop) []error {
	if loop == nil {
		return nil
	}

	var errs []error
	switch loop.LoopType {
	case compiler.LoopTypeWhile:
		if err := l.CheckSyntax(loop.WhileCondition); err != nil {
			errs = append(errs, fmt.Errorf("loop %s whileCondition: %w", loop.ID, err))
		}
	case compiler.LoopTypeDoWhile:
		if err := l.CheckSyntax(loop.DoWhileCondition); err != nil {
			errs = append(errs, fmt.Errorf("loop %s doWhileCondition: %w", loop.ID, err))
		}
	case compiler.LoopTypeForEach:
		// A literal collection parsed at compile time; only expression
		// strings need a syntax check
		if expr, ok := loop.ForEachItems.(string); ok {
			if err := l.CheckSyntax(expr); err != nil {
				errs = append(errs, fmt.Errorf("loop %s collection: %w", loop.ID, err))
			}
		}
	}
	return errs
}

// LintParallel checks the distribution expression of a collection-driven
// parallel
func (l *GojaLinter) LintParallel(parallel *compiler.Parallel) []error {
	if parallel == nil || parallel.ParallelType != compiler.ParallelTypeCollection {
		return nil
	}

	var errs []error
	if expr, ok := parallel.Distribution.(string); ok {
		if err := l.CheckSyntax(expr); err != nil {
			errs = append(errs, fmt.Errorf("parallel %s distribution: %w", parallel.ID, err))
		}
	}
	return errs
}

func (l *GojaLinter) compile(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return fmt.Errorf("empty expression")
	}

	// Wrapping in parentheses forces expression position, so object
	// literals are not misread as blocks
	if _, err := goja.Compile("expression", "("+source+")", false); err != nil {
		return fmt.Errorf("invalid expression %q: %w", source, err)
	}
	return nil
}
