package checkengine

import (
	"fmt"
	"strings"
)

// ParseExpressionTerm parses one term token extracted by the boolean
// expression tokenizer (spec.md §4.3): either helper form ("+helper/field/
// arg...") or comparison form (a left-anchored field path followed by one of
// ==, !=, <, <=, >, >=).
func ParseExpressionTerm(token string) (*Expression, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, newBuildError(SyntaxError, "check", token, "empty term token")
	}
	if strings.HasPrefix(token, "+") {
		return parseHelperToken(token)
	}
	return parseComparisonToken(token)
}

// parseHelperToken implements "+helper_name/field_path[/arg1[/arg2...]]":
// the field path is the second slash-delimited segment, and everything
// after it is reassembled into the operand handed back to
// operation.condition — the field itself is stripped out, matching
// original_source/stageBuilderCheck.cpp's prefix+suffix splice.
func parseHelperToken(token string) (*Expression, error) {
	body := strings.TrimPrefix(token, "+")
	parts := strings.Split(body, "/")
	if len(parts) < 2 || parts[1] == "" {
		return nil, newBuildError(SyntaxError, "check", token, "helper form requires +helper_name/field_path")
	}
	helperName := parts[0]
	fieldPath := ParsePointer(parts[1])
	args := parts[2:]

	reconstructed := "+" + helperName
	if len(args) > 0 {
		reconstructed += "/" + strings.Join(args, "/")
	}
	return buildCondition(fieldPath, StringValue(reconstructed))
}

// parseComparisonToken implements the anchored pattern
// "^[^=<>!]+(<=|>=|<|>|==|!=)" via a hand-written left-to-right scan rather
// than a regex (spec.md §9 design note: deterministic, no backtracking).
func parseComparisonToken(token string) (*Expression, error) {
	start, end, op, ok := findComparisonOp(token)
	if !ok {
		return nil, newBuildError(SyntaxError, "check", token, "term is neither helper form nor a recognized comparison")
	}
	if start == 0 {
		return nil, newBuildError(SyntaxError, "check", token, "comparison term has an empty field path")
	}

	fieldPath := ParsePointer(token[:start])
	operand := ParseLiteral(token[end:])

	switch op {
	case "==":
		return buildCondition(fieldPath, operand)
	case "!=":
		positive, err := buildCondition(fieldPath, operand)
		if err != nil {
			return nil, err
		}
		return negateEquality(fieldPath, positive), nil
	default:
		return buildOrderedComparison(token, op, fieldPath, operand)
	}
}

// findComparisonOp scans token left to right for the first occurrence of an
// operator character and classifies it. It never backtracks: once an
// operator character is found, the match either succeeds at that position or
// the token is rejected.
func findComparisonOp(token string) (start, end int, op string, ok bool) {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '=' && c != '<' && c != '>' && c != '!' {
			continue
		}
		if i+1 < len(token) {
			switch token[i : i+2] {
			case "<=", ">=", "==", "!=":
				return i, i + 2, token[i : i+2], true
			}
		}
		if c == '<' || c == '>' {
			return i, i + 1, string(c), true
		}
		return i, i, "", false
	}
	return 0, 0, "", false
}

func buildOrderedComparison(token, op string, fieldPath Pointer, operand Value) (*Expression, error) {
	var suffix string
	switch op {
	case "<":
		suffix = "less"
	case "<=":
		suffix = "less_or_equal"
	case ">":
		suffix = "greater"
	case ">=":
		suffix = "greater_or_equal"
	default:
		return nil, newBuildError(SyntaxError, "check", token, "unrecognized operator %q", op)
	}

	var prefix string
	switch operand.Kind() {
	case KindInt:
		prefix = "int_"
	case KindString:
		prefix = "string_"
	default:
		return nil, newBuildError(TypeErrorKind, "check", token, "operator %s requires number or string", op)
	}

	factory, err := DefaultRegistry().Get(prefix + suffix)
	if err != nil {
		return nil, err
	}
	return factory(fieldPath, operand)
}

// negateEquality builds the "!=" term: per spec.md §9's design note, this is
// a per-term negation of the leaf function(s) rather than a Not node
// wrapping the positive expression, so a single trace event is emitted
// regardless of whether the positive side was one leaf (scalar operand) or
// several (object operand) — mirroring original_source's "return false as
// soon as any leaf is true; otherwise true" loop over the flattened operand.
func negateEquality(fieldPath Pointer, positive *Expression) *Expression {
	leaves := flattenLeafFns(positive)
	name := fmt.Sprintf("not_equal: %s", fieldPath.String())
	return NewTerm(
		name,
		func(event Value) bool {
			for _, fn := range leaves {
				if fn(event) {
					return false
				}
			}
			return true
		},
		"["+name+"] -> Success",
		"["+name+"] -> Failure",
	)
}

func flattenLeafFns(e *Expression) []func(Value) bool {
	switch e.Kind {
	case TermExpr:
		return []func(Value) bool{e.evalFn}
	case AndExpr:
		var fns []func(Value) bool
		for _, child := range e.children {
			fns = append(fns, flattenLeafFns(child)...)
		}
		return fns
	default:
		return nil
	}
}
