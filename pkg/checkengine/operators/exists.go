// Package operators registers the builtin check-stage helper builders
// against checkengine's process-wide registry. Grounded on the teacher's
// pkg/graft/operators/op_*.go convention: each file owns one family of
// builders and self-registers from an init().
package operators

import (
	"fmt"

	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func init() {
	checkengine.RegisterBuilder("exists", existsFactory)
	checkengine.RegisterBuilder("not_exists", notExistsFactory)
}

// existsFactory builds the "+exists" helper (spec.md §4.1): succeeds when
// field_path resolves to any value, including an explicit null.
func existsFactory(fieldPath checkengine.Pointer, _ checkengine.Value) (*checkengine.Expression, error) {
	name := fmt.Sprintf("exists: %s", fieldPath.String())
	return checkengine.NewTerm(
		name,
		func(event checkengine.Value) bool {
			_, ok := fieldPath.Resolve(event)
			return ok
		},
		"["+name+"] -> Success",
		"["+name+"] -> Failure",
	), nil
}

// notExistsFactory builds the "+not_exists" helper — the pointwise negation
// of exists, carrying its own (not borrowed) trace strings since, unlike the
// expression-tree Not node, this is a single leaf builder, not a composed
// node wrapping a child (spec.md §4.1).
func notExistsFactory(fieldPath checkengine.Pointer, _ checkengine.Value) (*checkengine.Expression, error) {
	name := fmt.Sprintf("not_exists: %s", fieldPath.String())
	return checkengine.NewTerm(
		name,
		func(event checkengine.Value) bool {
			_, ok := fieldPath.Resolve(event)
			return !ok
		},
		"["+name+"] -> Success",
		"["+name+"] -> Failure",
	), nil
}
