package operators

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wayneeseguin/checkengine/pkg/checkengine"
)

func TestExistsFactory(t *testing.T) {
	Convey("exists succeeds for any resolvable value, including explicit null", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("exists")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/a"), checkengine.Value{})
		So(err, ShouldBeNil)

		withNull := checkengine.ObjectValue([]string{"a"}, map[string]checkengine.Value{"a": checkengine.Null()})
		So(checkengine.Evaluate(expr, withNull).Success, ShouldBeTrue)

		empty := checkengine.ObjectValue(nil, map[string]checkengine.Value{})
		So(checkengine.Evaluate(expr, empty).Success, ShouldBeFalse)
	})
}

func TestNotExistsFactory(t *testing.T) {
	Convey("not_exists is the pointwise negation of exists", t, func() {
		factory, err := checkengine.DefaultRegistry().Get("not_exists")
		So(err, ShouldBeNil)

		expr, err := factory(checkengine.ParsePointer("/a"), checkengine.Value{})
		So(err, ShouldBeNil)

		present := checkengine.ObjectValue([]string{"a"}, map[string]checkengine.Value{"a": checkengine.IntValue(1)})
		So(checkengine.Evaluate(expr, present).Success, ShouldBeFalse)

		absent := checkengine.ObjectValue(nil, map[string]checkengine.Value{})
		So(checkengine.Evaluate(expr, absent).Success, ShouldBeTrue)
	})
}
