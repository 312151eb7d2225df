package checkengine

// ParseListTerm parses one entry of the list-form check definition: a
// single-key object `{field_path: operand}` (spec.md §4.2). The key becomes
// the field path (dot-normalized to "/"); the value is handed to
// operation.condition verbatim, whether it is a literal or a "+helper/..."
// string.
//
// Grounded on the teacher's parse_opcall.go for the "parse the one known
// shape, fail fast on anything else" discipline, and on
// original_source/stageBuilderCheck.cpp's stageBuilderCheckList, which walks
// exactly one object entry per list item.
func ParseListTerm(def Value) (*Expression, error) {
	keys, fields, ok := def.Object()
	if !ok {
		return nil, newBuildError(ShapeError, "check", "", "list-form term must be a single-key object")
	}
	if len(keys) != 1 {
		return nil, newBuildError(ShapeError, "check", "", "list-form term must have exactly one key, got %d", len(keys))
	}
	key := keys[0]
	return buildCondition(ParsePointer(key), fields[key])
}

// buildCondition invokes the operation.condition dispatcher registered by
// the operators package. Both the list form and the expression-token form
// funnel through this single call (spec.md §4.1).
func buildCondition(fieldPath Pointer, operand Value) (*Expression, error) {
	factory, err := DefaultRegistry().Get("operation.condition")
	if err != nil {
		return nil, err
	}
	return factory(fieldPath, operand)
}
