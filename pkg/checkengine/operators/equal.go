package operators

import (
	"fmt"

	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func init() {
	checkengine.RegisterBuilder("equal", equalFactory)
}

// equalFactory builds the bare-equality operator that operation.condition
// falls back to whenever the operand is not a "+helper" string (spec.md
// §4.1). An object operand decomposes into one leaf per field rather than a
// single deep-equality Term, so that the == vs != comparison-form dispatch
// in the term parsers can negate each leaf individually — see
// buildObjectEquality.
//
// Grounded on original_source/stageBuilderCheck.cpp's fnVec-building branch:
// a scalar/array operand yields one function; an object operand yields one
// function per key, collected into a fnVec the caller then folds with
// short-circuit AND (or, for !=, the original's "all leaves must differ"
// loop — reproduced in the expression-token parser's comparison path).
func equalFactory(fieldPath checkengine.Pointer, operand checkengine.Value) (*checkengine.Expression, error) {
	if keys, fields, ok := operand.Object(); ok {
		if checkengine.HasNestedObject(operand) {
			return nil, nestedObjectError(fieldPath, keys, fields)
		}
		return buildObjectEquality(fieldPath, keys, fields)
	}
	return equalLeaf(fieldPath, operand), nil
}

// nestedObjectError locates the offending field for the BuildError's Token
// once HasNestedObject has already confirmed rejection is warranted.
func nestedObjectError(fieldPath checkengine.Pointer, keys []string, fields map[string]checkengine.Value) error {
	for _, k := range keys {
		if fields[k].Kind() == checkengine.KindObject {
			return &checkengine.BuildError{
				Kind:    checkengine.UnsupportedNestedObjectComparison,
				Token:   k,
				Message: fmt.Sprintf("object comparison at %s cannot nest another object at field %q", fieldPath.String(), k),
			}
		}
	}
	return &checkengine.BuildError{
		Kind:    checkengine.UnsupportedNestedObjectComparison,
		Message: fmt.Sprintf("object comparison at %s cannot nest another object", fieldPath.String()),
	}
}

func equalLeaf(fieldPath checkengine.Pointer, operand checkengine.Value) *checkengine.Expression {
	name := fmt.Sprintf("equal: %s == %s", fieldPath.String(), operand.GoString())
	return checkengine.NewTerm(
		name,
		func(event checkengine.Value) bool {
			val, ok := fieldPath.Resolve(event)
			if !ok {
				return false
			}
			return checkengine.DeepEqual(val, operand)
		},
		"["+name+"] -> Success",
		"["+name+"] -> Failure",
	)
}

// buildObjectEquality flattens an object operand into a conjunction of
// per-field leaves (spec.md §4.3 "Object comparisons": "the parser flattens
// into a conjunction of leaves"). Callers must reject a nested object operand
// via HasNestedObject before calling this — only one level of object
// comparison is supported, matching original_source's refusal to recurse
// into a nested mapping.
func buildObjectEquality(fieldPath checkengine.Pointer, keys []string, fields map[string]checkengine.Value) (*checkengine.Expression, error) {
	children := make([]*checkengine.Expression, 0, len(keys))
	for _, k := range keys {
		children = append(children, equalLeaf(fieldPath.Append(k), fields[k]))
	}
	name := fmt.Sprintf("equal: %s == {...}", fieldPath.String())
	return checkengine.NewAnd("", name, children)
}
