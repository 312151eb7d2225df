package operators

import (
	"fmt"

	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func init() {
	registerIntCompare("int_equal", func(a, b int64) bool { return a == b })
	registerIntCompare("int_not_equal", func(a, b int64) bool { return a != b })
	registerIntCompare("int_less", func(a, b int64) bool { return a < b })
	registerIntCompare("int_less_or_equal", func(a, b int64) bool { return a <= b })
	registerIntCompare("int_greater", func(a, b int64) bool { return a > b })
	registerIntCompare("int_greater_or_equal", func(a, b int64) bool { return a >= b })

	registerStringCompare("string_less", func(a, b string) bool { return a < b })
	registerStringCompare("string_less_or_equal", func(a, b string) bool { return a <= b })
	registerStringCompare("string_greater", func(a, b string) bool { return a > b })
	registerStringCompare("string_greater_or_equal", func(a, b string) bool { return a >= b })
}

// registerIntCompare wires one int_* helper (spec.md §4.1 table): "both
// operand and event value must be integer; missing field, non-integer
// field, or non-integer operand all yield false" — a type mismatch here
// degrades to a failed Term, it never fails construction (spec.md §4.6).
func registerIntCompare(helperName string, cmp func(event, operand int64) bool) {
	checkengine.RegisterBuilder(helperName, func(fieldPath checkengine.Pointer, operand checkengine.Value) (*checkengine.Expression, error) {
		opInt, opOK := operand.Int()
		name := fmt.Sprintf("%s: %s %s", helperName, fieldPath.String(), operand.GoString())
		return checkengine.NewTerm(
			name,
			func(event checkengine.Value) bool {
				if !opOK {
					return false
				}
				val, ok := fieldPath.Resolve(event)
				if !ok {
					return false
				}
				eventInt, ok := val.Int()
				if !ok {
					return false
				}
				return cmp(eventInt, opInt)
			},
			"["+name+"] -> Success",
			"["+name+"] -> Failure",
		), nil
	})
}

// registerStringCompare wires one string_* lexicographic helper.
func registerStringCompare(helperName string, cmp func(event, operand string) bool) {
	checkengine.RegisterBuilder(helperName, func(fieldPath checkengine.Pointer, operand checkengine.Value) (*checkengine.Expression, error) {
		opStr, opOK := operand.String()
		name := fmt.Sprintf("%s: %s %s", helperName, fieldPath.String(), operand.GoString())
		return checkengine.NewTerm(
			name,
			func(event checkengine.Value) bool {
				if !opOK {
					return false
				}
				val, ok := fieldPath.Resolve(event)
				if !ok {
					return false
				}
				eventStr, ok := val.String()
				if !ok {
					return false
				}
				return cmp(eventStr, opStr)
			},
			"["+name+"] -> Success",
			"["+name+"] -> Failure",
		), nil
	})
}
