package checkengine

import (
	"strings"
	"unicode"

	"github.com/wayneeseguin/checkengine/internal/clog"
)

// BuildExpression compiles a free-form boolean expression string — terms
// joined by AND/OR/NOT and grouped with parentheses — into a composed
// Expression tree (spec.md §4.4), via Dijkstra's shunting-yard algorithm.
//
// Grounded on the teacher's pkg/graft/parser/tokenizer.go (character-class
// scanning, a paren/keyword-aware token stream) and
// operator_registry.go's Precedence/Associativity pairing, retargeted from
// arithmetic operators to the three boolean keywords this spec names.
func BuildExpression(source string) (*Expression, error) {
	clog.DEBUG("running shunting-yard compile of %q", source)
	defer clog.DEBUG("done compiling %q\n", source)

	tokens := tokenizeExpression(source)
	if len(tokens) == 0 {
		return nil, newBuildError(EmptyExpression, "check", source, "expression is empty")
	}

	var output []*Expression
	var ops []string

	apply := func(op string) error {
		switch op {
		case "NOT":
			if len(output) < 1 {
				return newBuildError(UnexpectedOperator, "check", op, "NOT has no operand")
			}
			child := output[len(output)-1]
			output = output[:len(output)-1]
			output = append(output, NewNot("not", child))
		case "AND", "OR":
			if len(output) < 2 {
				return newBuildError(UnexpectedOperator, "check", op, "%s requires two operands", op)
			}
			b := output[len(output)-1]
			a := output[len(output)-2]
			output = output[:len(output)-2]
			var node *Expression
			var err error
			if op == "AND" {
				node, err = NewAnd("check", "and", []*Expression{a, b})
			} else {
				node, err = NewOr("check", "or", []*Expression{a, b})
			}
			if err != nil {
				return err
			}
			output = append(output, node)
		}
		return nil
	}

	for _, tok := range tokens {
		switch {
		case tok == "(":
			ops = append(ops, tok)

		case tok == ")":
			closed := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top == "(" {
					closed = true
					break
				}
				if err := apply(top); err != nil {
					return nil, err
				}
			}
			if !closed {
				return nil, newBuildError(UnbalancedParens, "check", source, "unmatched closing paren")
			}

		case isBoolKeyword(tok):
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == "(" {
					break
				}
				if shouldPopBeforePush(top, tok) {
					if err := apply(top); err != nil {
						return nil, err
					}
					ops = ops[:len(ops)-1]
					continue
				}
				break
			}
			ops = append(ops, tok)

		default:
			expr, err := ParseExpressionTerm(tok)
			if err != nil {
				return nil, &BuildError{Kind: UnknownToken, Stage: "check", Token: tok, Message: err.Error(), Nested: err}
			}
			output = append(output, expr)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top == "(" {
			return nil, newBuildError(UnbalancedParens, "check", source, "unmatched opening paren")
		}
		if err := apply(top); err != nil {
			return nil, err
		}
	}

	if len(output) != 1 {
		return nil, newBuildError(UnexpectedOperator, "check", source, "expression did not reduce to a single predicate")
	}
	return output[0], nil
}

func isBoolKeyword(tok string) bool {
	return tok == "AND" || tok == "OR" || tok == "NOT"
}

func precedence(op string) int {
	switch op {
	case "NOT":
		return 3
	case "AND":
		return 2
	case "OR":
		return 1
	default:
		return 0
	}
}

// shouldPopBeforePush decides whether the operator already on the stack
// (top) must be applied before pushing the incoming operator (next), per
// standard shunting-yard precedence/associativity rules. NOT is right
// associative and unary; AND/OR are left associative.
func shouldPopBeforePush(top, next string) bool {
	if next == "NOT" {
		return precedence(top) > precedence(next)
	}
	return precedence(top) >= precedence(next)
}

// tokenizeExpression splits on whitespace, always isolating "(" and ")" as
// their own tokens even with no surrounding whitespace (spec.md §4.4:
// "whitespace separates tokens; ( and ) are single-char tokens").
func tokenizeExpression(source string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range source {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
