package operators

import (
	"strings"

	"github.com/wayneeseguin/checkengine/internal/clog"
	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func init() {
	checkengine.RegisterBuilder("operation.condition", conditionFactory)
}

// conditionFactory is the single dispatch point both term parsers funnel
// through (spec.md §4.1): a string operand beginning with "+" names a
// helper builder and its arguments; anything else is a bare-equality
// operand. Grounded on original_source/stageBuilderCheck.cpp's termBuilder,
// which routes every term — list-form or expression-form — through this
// same operation.condition entry point rather than duplicating the dispatch
// logic at each call site.
func conditionFactory(fieldPath checkengine.Pointer, operand checkengine.Value) (*checkengine.Expression, error) {
	clog.DEBUG("running (( operation.condition )) at %s", fieldPath.String())
	defer clog.DEBUG("done with (( operation.condition )) at %s\n", fieldPath.String())

	if s, ok := operand.String(); ok && strings.HasPrefix(s, "+") {
		return dispatchHelper(fieldPath, s)
	}
	equal, err := checkengine.DefaultRegistry().Get("equal")
	if err != nil {
		return nil, err
	}
	return equal(fieldPath, operand)
}

// dispatchHelper parses "+helper_name[/arg1[/arg2...]]" and forwards to the
// named builder, reassembling any remaining segments into a single operand
// token via ParseLiteral (spec.md §4.1 "helper-function form").
func dispatchHelper(fieldPath checkengine.Pointer, token string) (*checkengine.Expression, error) {
	body := strings.TrimPrefix(token, "+")
	parts := strings.Split(body, "/")
	helperName := parts[0]
	args := parts[1:]
	clog.TRACE("dispatching helper %q at %s with %d arg(s)", helperName, fieldPath.String(), len(args))

	factory, err := checkengine.DefaultRegistry().Get(helperName)
	if err != nil {
		return nil, err
	}

	var argOperand checkengine.Value
	if len(args) > 0 {
		argOperand = checkengine.ParseLiteral(strings.Join(args, "/"))
	}
	return factory(fieldPath, argOperand)
}
