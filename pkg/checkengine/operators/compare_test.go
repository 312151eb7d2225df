package operators

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func fieldEvent(v checkengine.Value) checkengine.Value {
	return checkengine.ObjectValue([]string{"f"}, map[string]checkengine.Value{"f": v})
}

func TestIntCompareFamily(t *testing.T) {
	Convey("int_* helpers require both sides to be integer", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("int_less")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/f"), checkengine.IntValue(10))
		So(err, ShouldBeNil)

		So(checkengine.Evaluate(expr, fieldEvent(checkengine.IntValue(5))).Success, ShouldBeTrue)
		So(checkengine.Evaluate(expr, fieldEvent(checkengine.IntValue(20))).Success, ShouldBeFalse)

		Convey("a non-integer event value is false, not an error", func() {
			So(checkengine.Evaluate(expr, fieldEvent(checkengine.StringValue("5"))).Success, ShouldBeFalse)
		})

		Convey("a missing field is false", func() {
			empty := checkengine.ObjectValue(nil, map[string]checkengine.Value{})
			So(checkengine.Evaluate(expr, empty).Success, ShouldBeFalse)
		})
	})

	Convey("int_equal / int_not_equal", t, func() {
		eqFactory, _ := checkengine.DefaultRegistry().Get("int_equal")
		neFactory, _ := checkengine.DefaultRegistry().Get("int_not_equal")

		eq, _ := eqFactory(checkengine.ParsePointer("/f"), checkengine.IntValue(7))
		ne, _ := neFactory(checkengine.ParsePointer("/f"), checkengine.IntValue(7))

		So(checkengine.Evaluate(eq, fieldEvent(checkengine.IntValue(7))).Success, ShouldBeTrue)
		So(checkengine.Evaluate(ne, fieldEvent(checkengine.IntValue(7))).Success, ShouldBeFalse)
		So(checkengine.Evaluate(ne, fieldEvent(checkengine.IntValue(8))).Success, ShouldBeTrue)
	})
}

func TestStringCompareFamily(t *testing.T) {
	Convey("string_* helpers compare lexicographically and require both sides to be strings", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("string_greater_or_equal")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/f"), checkengine.StringValue("m"))
		So(err, ShouldBeNil)

		So(checkengine.Evaluate(expr, fieldEvent(checkengine.StringValue("z"))).Success, ShouldBeTrue)
		So(checkengine.Evaluate(expr, fieldEvent(checkengine.StringValue("a"))).Success, ShouldBeFalse)
		So(checkengine.Evaluate(expr, fieldEvent(checkengine.IntValue(1))).Success, ShouldBeFalse)
	})
}
