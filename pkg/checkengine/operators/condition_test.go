package operators

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func TestConditionDispatch(t *testing.T) {
	Convey("operation.condition routes a +helper operand to the named builder", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("operation.condition")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/f"), checkengine.StringValue("+exists"))
		So(err, ShouldBeNil)

		present := checkengine.ObjectValue([]string{"f"}, map[string]checkengine.Value{"f": checkengine.IntValue(1)})
		So(checkengine.Evaluate(expr, present).Success, ShouldBeTrue)
	})

	Convey("operation.condition passes helper arguments through to the helper", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("operation.condition")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/f"), checkengine.StringValue("+int_less/10"))
		So(err, ShouldBeNil)

		So(checkengine.Evaluate(expr, fieldEvent(checkengine.IntValue(5))).Success, ShouldBeTrue)
		So(checkengine.Evaluate(expr, fieldEvent(checkengine.IntValue(20))).Success, ShouldBeFalse)
	})

	Convey("operation.condition falls back to bare equality for any other operand", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("operation.condition")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/f"), checkengine.IntValue(5))
		So(err, ShouldBeNil)
		So(checkengine.Evaluate(expr, fieldEvent(checkengine.IntValue(5))).Success, ShouldBeTrue)
	})

	Convey("an unknown helper name fails with UnknownBuilder", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("operation.condition")
		So(err, ShouldBeNil)

		_, err = factory(checkengine.ParsePointer("/f"), checkengine.StringValue("+nope"))
		So(err, ShouldNotBeNil)
		So(err.(*checkengine.BuildError).Kind, ShouldEqual, checkengine.UnknownBuilder)
	})
}
