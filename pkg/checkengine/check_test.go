package checkengine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	_ "github.com/wayneeseguin/checkengine/pkg/checkengine/operators"
)

func obj(fields map[string]Value) Value {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return ObjectValue(keys, fields)
}

func TestCheckListExistence(t *testing.T) {
	Convey("S1 — list-form existence", t, func() {
		def := ArrayValue([]Value{
			obj(map[string]Value{"field": StringValue("+exists")}),
		})
		expr, err := BuildCheck(def)
		So(err, ShouldBeNil)

		So(Evaluate(expr, obj(map[string]Value{"field": IntValue(1)})).Success, ShouldBeTrue)
		So(Evaluate(expr, obj(map[string]Value{"field": StringValue("1")})).Success, ShouldBeTrue)
		So(Evaluate(expr, obj(map[string]Value{"other": IntValue(1)})).Success, ShouldBeFalse)
	})

	Convey("S2 — list-form not_exists", t, func() {
		def := ArrayValue([]Value{
			obj(map[string]Value{"field": StringValue("+not_exists")}),
		})
		expr, err := BuildCheck(def)
		So(err, ShouldBeNil)

		So(Evaluate(expr, obj(map[string]Value{"field": IntValue(1)})).Success, ShouldBeFalse)
		So(Evaluate(expr, obj(map[string]Value{"other": IntValue(1)})).Success, ShouldBeTrue)
	})
}

func TestCheckExpressionNumericCompare(t *testing.T) {
	Convey("S3 — expression-form numeric compare", t, func() {
		def := StringValue("age>=18 AND age<65")
		expr, err := BuildCheck(def)
		So(err, ShouldBeNil)
		So(expr.Name, ShouldEqual, "check: age>=18 AND age<65")

		So(Evaluate(expr, obj(map[string]Value{"age": IntValue(42)})).Success, ShouldBeTrue)
		So(Evaluate(expr, obj(map[string]Value{"age": IntValue(17)})).Success, ShouldBeFalse)
		So(Evaluate(expr, obj(map[string]Value{"age": IntValue(65)})).Success, ShouldBeFalse)
		So(Evaluate(expr, obj(map[string]Value{"age": StringValue("42")})).Success, ShouldBeFalse)
	})
}

func TestCheckExpressionEqualityLiteral(t *testing.T) {
	Convey("S4 — expression-form equality with JSON literal", t, func() {
		levelCheck, err := BuildCheck(StringValue("level==3"))
		So(err, ShouldBeNil)
		So(Evaluate(levelCheck, obj(map[string]Value{"level": IntValue(3)})).Success, ShouldBeTrue)
		So(Evaluate(levelCheck, obj(map[string]Value{"level": StringValue("3")})).Success, ShouldBeFalse)

		nameCheck, err := BuildCheck(StringValue("name==admin"))
		So(err, ShouldBeNil)
		So(Evaluate(nameCheck, obj(map[string]Value{"name": StringValue("admin")})).Success, ShouldBeTrue)
	})
}

func TestCheckShortCircuitTrace(t *testing.T) {
	Convey("S5 — short-circuit trace", t, func() {
		def := ArrayValue([]Value{
			obj(map[string]Value{"a": StringValue("+exists")}),
			obj(map[string]Value{"b": StringValue("+exists")}),
		})
		expr, err := BuildCheck(def)
		So(err, ShouldBeNil)

		sink := &SliceSink{}
		result := EvaluateWithSink(expr, obj(map[string]Value{"a": IntValue(1)}), sink)

		So(result.Success, ShouldBeFalse)
		// a succeeds, so And must evaluate b next (it is the first failing
		// child, not a skipped later sibling); b's own trace is emitted when
		// it is evaluated, and then And emits its own failure trace on top —
		// three events, not two. Only a child past the first failure is ever
		// skipped (spec.md §8 invariant 2).
		So(len(sink.Events), ShouldEqual, 3)
		So(sink.Events[0].Node, ShouldEqual, "exists: /a")
		So(sink.Events[0].Success, ShouldBeTrue) // a exists
		So(sink.Events[1].Node, ShouldEqual, "exists: /b")
		So(sink.Events[1].Success, ShouldBeFalse) // b does not
		So(sink.Events[2].Node, ShouldEqual, "stage.check")
		So(sink.Events[2].Success, ShouldBeFalse) // And's own failure trace
	})
}

func TestCheckNestedObjectUnsupported(t *testing.T) {
	Convey("S6 — nested object comparison is rejected at construction", t, func() {
		def := ArrayValue([]Value{
			obj(map[string]Value{
				"f": obj(map[string]Value{
					"inner": obj(map[string]Value{"deep": IntValue(1)}),
				}),
			}),
		})
		_, err := BuildCheck(def)
		So(err, ShouldNotBeNil)
		multi, ok := err.(*MultiError)
		So(ok, ShouldBeTrue)
		So(len(multi.Errors), ShouldEqual, 1)
		So(multi.Errors[0].(*BuildError).Kind, ShouldEqual, UnsupportedNestedObjectComparison)
	})
}

func TestCheckListAccumulatesAllMalformedTerms(t *testing.T) {
	Convey("a list-form check reports every malformed term, not just the first", t, func() {
		def := ArrayValue([]Value{
			IntValue(1), // not an object at all
			ObjectValue([]string{"a", "b"}, map[string]Value{"a": IntValue(1), "b": IntValue(2)}), // two keys
			obj(map[string]Value{"ok": StringValue("+exists")}),
		})
		_, err := BuildCheck(def)
		So(err, ShouldNotBeNil)
		multi, ok := err.(*MultiError)
		So(ok, ShouldBeTrue)
		So(len(multi.Errors), ShouldEqual, 2)
		So(multi.Errors[0].(*BuildError).Kind, ShouldEqual, ShapeError)
		So(multi.Errors[1].(*BuildError).Kind, ShouldEqual, ShapeError)
	})
}

func TestCheckBuilderShapeDispatch(t *testing.T) {
	Convey("any definition shape other than array/string is a ShapeError", t, func() {
		_, err := BuildCheck(IntValue(1))
		So(err, ShouldNotBeNil)
		So(err.(*BuildError).Kind, ShouldEqual, ShapeError)
	})
}

func TestCheckNotEqualNegatesEquality(t *testing.T) {
	Convey("invariant 8 — != negates the corresponding == term with one trace", t, func() {
		expr, err := BuildCheck(StringValue("level!=3"))
		So(err, ShouldBeNil)
		So(expr.Kind, ShouldEqual, TermExpr)

		sink := &SliceSink{}
		result := EvaluateWithSink(expr, obj(map[string]Value{"level": IntValue(3)}), sink)
		So(result.Success, ShouldBeFalse)
		So(len(sink.Events), ShouldEqual, 1)

		So(EvaluateWithSink(expr, obj(map[string]Value{"level": IntValue(4)}), nil).Success, ShouldBeTrue)
	})
}
