package checkengine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePointer(t *testing.T) {
	Convey("ParsePointer normalizes both surface syntaxes", t, func() {
		Convey("dot form is normalized to slash form", func() {
			p := ParsePointer("a.b.0")
			So(p.String(), ShouldEqual, "/a/b/0")
		})

		Convey("slash form is accepted as-is", func() {
			p := ParsePointer("/a/b/0")
			So(p.String(), ShouldEqual, "/a/b/0")
		})

		Convey("the empty string is the root pointer", func() {
			So(ParsePointer("").IsRoot(), ShouldBeTrue)
		})

		Convey("~0 and ~1 escape a literal ~ and / inside a segment", func() {
			p := ParsePointer("/a~1b/c~0d")
			So(p.String(), ShouldEqual, "/a~1b/c~0d")
		})
	})
}

func TestPointerAppend(t *testing.T) {
	Convey("Append extends a pointer without mutating the original", t, func() {
		base := ParsePointer("/a")
		child := base.Append("b")
		So(child.String(), ShouldEqual, "/a/b")
		So(base.String(), ShouldEqual, "/a")
	})
}

func TestPointerResolve(t *testing.T) {
	Convey("Resolve walks an event along the pointer's segments", t, func() {
		event := ObjectValue([]string{"a"}, map[string]Value{
			"a": ArrayValue([]Value{IntValue(10), IntValue(20)}),
		})

		Convey("a path through an object into an array resolves", func() {
			v, ok := ParsePointer("/a/1").Resolve(event)
			So(ok, ShouldBeTrue)
			i, _ := v.Int()
			So(i, ShouldEqual, 20)
		})

		Convey("a missing key fails to resolve", func() {
			_, ok := ParsePointer("/missing").Resolve(event)
			So(ok, ShouldBeFalse)
		})

		Convey("an out-of-range index fails to resolve", func() {
			_, ok := ParsePointer("/a/5").Resolve(event)
			So(ok, ShouldBeFalse)
		})

		Convey("the root pointer resolves to the event itself", func() {
			v, ok := RootPointer().Resolve(event)
			So(ok, ShouldBeTrue)
			So(v.Kind(), ShouldEqual, KindObject)
		})

		Convey("an explicit null still resolves as present", func() {
			withNull := ObjectValue([]string{"n"}, map[string]Value{"n": Null()})
			v, ok := ParsePointer("/n").Resolve(withNull)
			So(ok, ShouldBeTrue)
			So(v.IsNull(), ShouldBeTrue)
		})
	})
}
