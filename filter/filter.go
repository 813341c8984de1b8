// Package filter compiles boolean expressions evaluated against market
// entries. It backs the CLI's --filter flag for narrowing price listings
// and search results.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Entry is one market item as seen by filter expressions
type Entry struct {
	Name string
	// Price is nil when the item has no price for the selected field
	Price *float64
}

// Filter is a compiled filter expression. Compile once, match many.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles a boolean expression over market entries. Expressions
// see name (string), price (float, zero when absent), has_price (bool),
// and case-insensitive string helpers:
//
//	has_price && price > 10
//	contains(name, "knife") && price < 200
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(Entry{})),
		expr.AllowUndefinedVariables(),
		expr.AsBool(), // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Match evaluates the filter against one entry
func (f *Filter) Match(entry Entry) (bool, error) {
	result, err := expr.Run(f.program, newEnv(entry))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			EntryName:  entry.Name,
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// newEnv builds the evaluation environment for one entry. Entries without
// a price expose has_price == false; price reads as zero there, so guard
// price comparisons with has_price to keep absence distinct from free.
func newEnv(entry Entry) map[string]any {
	price := 0.0
	if entry.Price != nil {
		price = *entry.Price
	}

	return map[string]any{
		"name":      entry.Name,
		"price":     price,
		"has_price": entry.Price != nil,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
