package checkengine

import (
	"fmt"

	"github.com/wayneeseguin/checkengine/internal/clog"
)

// BuildCheck is the check-stage entry point (spec.md §4.5): it dispatches on
// the JSON/YAML shape of the check definition and returns a single composed
// Expression ready for Evaluate/EvaluateWithSink.
//
// Grounded on original_source/stageBuilderCheck.cpp's getStageBuilderCheck,
// a three-way dispatch (array / string / anything else) at the top of the
// check-stage build path.
func BuildCheck(def Value) (*Expression, error) {
	clog.DEBUG("building check-stage expression from a %s definition", def.Kind())
	defer clog.DEBUG("done building check-stage expression")

	switch def.Kind() {
	case KindArray:
		return buildListCheck(def)
	case KindString:
		return buildExpressionCheck(def)
	default:
		return nil, newBuildError(ShapeError, "check", "", "check definition must be an array or a string, got %s", def.Kind())
	}
}

// buildListCheck implements the "array of 1-key objects" shape: an And over
// each list-form term, named "stage.check" (spec.md §4.5 table).
//
// Every item is parsed before giving up, accumulating into a MultiError the
// way the teacher's api.go collects one error per failed document entry
// instead of stopping at the first — a malformed check definition is more
// useful to a caller when every bad term is reported at once, not just the
// first one found. "No partial expression is returned" (spec.md §6) still
// holds: on any failure the whole build aborts and only the aggregated error
// comes back.
func buildListCheck(def Value) (*Expression, error) {
	items, _ := def.Array()
	clog.TRACE("list-form check has %d term(s)", len(items))
	children := make([]*Expression, 0, len(items))
	var errs MultiError
	for _, item := range items {
		child, err := ParseListTerm(item)
		if err != nil {
			errs.Append(err)
			continue
		}
		children = append(children, child)
	}
	if len(errs.Errors) > 0 {
		return nil, &errs
	}
	return NewAnd("check", "stage.check", children)
}

// buildExpressionCheck implements the "string" shape: the shunting-yard
// evaluator's root node, renamed to "check: <source>" per spec.md §4.5,
// while keeping its Kind/children intact so every internal And/Or/Not/Term
// node still traces normally through EvaluateWithSink (spec.md invariant 7
// and scenario S5's trace-granularity contract apply to this tree exactly
// as they do to the list form's).
func buildExpressionCheck(def Value) (*Expression, error) {
	source, _ := def.String()
	root, err := BuildExpression(source)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("check: %s", source)
	return renameRoot(root, name), nil
}

func renameRoot(e *Expression, name string) *Expression {
	renamed := *e
	renamed.Name = name
	renamed.successTrace = "[" + name + "] -> Success"
	renamed.failureTrace = "[" + name + "] -> Failure"
	return &renamed
}
