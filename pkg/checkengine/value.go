package checkengine

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ValueKind is the discriminant of Value, closed over exactly the kinds
// spec.md §3 names for both event nodes and literal operands.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the in-memory representation of an event node or a literal
// operand. The zero Value is KindNull.
//
// Object keeps its keys in the order given to ObjectValue; FromInterface
// sorts the keys of a decoded Go map, so traces and deep equality are
// deterministic (spec.md §3 invariant: deterministic construction).
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	keys []string
	obj  map[string]Value
}

func Null() Value                { return Value{kind: KindNull} }
func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func ArrayValue(items []Value) Value {
	return Value{kind: KindArray, arr: items}
}

// ObjectValue builds an object Value, preserving the order keys are given in.
func ObjectValue(keys []string, fields map[string]Value) Value {
	return Value{kind: KindObject, keys: append([]string(nil), keys...), obj: fields}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Object returns the ordered keys and the field map for an object Value.
func (v Value) Object() ([]string, map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, nil, false
	}
	return v.keys, v.obj, true
}

// GoString renders a Value for debug/trace output.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		return fmt.Sprintf("%v", v.arr)
	case KindObject:
		return fmt.Sprintf("{%d fields}", len(v.keys))
	default:
		return "<unknown>"
	}
}

// FromInterface lifts a decoded Go value (as produced by a YAML/JSON
// decoder into interface{}) into the closed Value domain.
func FromInterface(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Null()
	case bool:
		return BoolValue(t)
	case int:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case float64:
		if float64(int64(t)) == t {
			return IntValue(int64(t))
		}
		return FloatValue(t)
	case string:
		return StringValue(t)
	case []interface{}:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromInterface(e)
		}
		return ArrayValue(items)
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make(map[string]Value, len(t))
		for k, e := range t {
			fields[k] = FromInterface(e)
		}
		return ObjectValue(keys, fields)
	case map[interface{}]interface{}:
		// yaml.v2-style decode of a mapping.
		keys := make([]string, 0, len(t))
		fields := make(map[string]Value, len(t))
		for k, e := range t {
			ks := fmt.Sprintf("%v", k)
			keys = append(keys, ks)
			fields[ks] = FromInterface(e)
		}
		sort.Strings(keys)
		return ObjectValue(keys, fields)
	default:
		return StringValue(fmt.Sprintf("%v", t))
	}
}

// ParseLiteral promotes a bare token to a Value: a token that decodes as
// YAML adopts the decoded type; otherwise it is a string. The decoded value
// is not limited to scalars: a flow sequence or mapping such as "[1,2]"
// becomes an array or object Value.
//
// Open question (spec.md §9, decided in SPEC_FULL.md): this fallback is
// deliberately loose. A token that merely resembles malformed JSON (e.g.
// "{bad") also falls back to being treated as a literal string, because
// yaml.Unmarshal fails on it exactly like it would on genuinely free text —
// there is no separate "this looks like it was meant to be an object"
// detection, by design.
func ParseLiteral(token string) Value {
	var decoded interface{}
	if err := yaml.Unmarshal([]byte(token), &decoded); err != nil {
		return StringValue(token)
	}
	// Whatever yaml.Unmarshal decoded (scalar, sequence or mapping) is
	// lifted as-is; there is no second check for scalar-only results.
	return FromInterface(decoded)
}

// DeepEqual implements structural equality over the closed Value domain,
// used by the bare-equality operator (spec.md §4.1).
func DeepEqual(a, b Value) bool {
	if a.kind != b.kind {
		// Integers and floats that represent the same number are not
		// silently coerced: spec.md's int_* family already requires exact
		// kind agreement, and bare equality follows the same rule.
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !DeepEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for _, k := range a.keys {
			bv, ok := b.obj[k]
			if !ok {
				return false
			}
			if !DeepEqual(a.obj[k], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// HasNestedObject reports whether an object Value contains another object
// as one of its field values — the UnsupportedNestedObjectComparison
// trigger (spec.md §4.3).
func HasNestedObject(v Value) bool {
	keys, fields, ok := v.Object()
	if !ok {
		return false
	}
	for _, k := range keys {
		if fields[k].Kind() == KindObject {
			return true
		}
	}
	return false
}
