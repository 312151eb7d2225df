package checkengine

import (
	"strconv"
	"strings"
)

// Pointer is a JSON-pointer-like field path: an ordered list of decoded
// segments. The empty Pointer addresses the document root.
//
// Adapted from the teacher's internal/utils/tree.Cursor (dot/bracket
// addressing, no escaping) and retargeted to the RFC-6901-flavored
// "/"-delimited form spec.md §6 specifies, with "~0"/"~1" escaping for
// literal "~" and "/" inside a segment.
type Pointer struct {
	segments []string
}

// RootPointer is the empty/root field path ("").
func RootPointer() Pointer { return Pointer{} }

// ParsePointer parses a field path given in the check-definition surface
// syntax: either a JSON-pointer string ("/a/b/0") or dot-separated form
// ("a.b.0"), normalizing "." to "/" and prefixing "/" if absent, per
// spec.md §4.2/§6.
func ParsePointer(raw string) Pointer {
	if raw == "" {
		return RootPointer()
	}
	normalized := raw
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + strings.ReplaceAll(normalized, ".", "/")
	}
	return parseSlashForm(normalized)
}

// parseSlashForm parses an already-"/"-delimited, possibly-escaped pointer.
func parseSlashForm(s string) Pointer {
	if s == "" || s == "/" {
		return RootPointer()
	}
	raw := strings.Split(strings.TrimPrefix(s, "/"), "/")
	segments := make([]string, len(raw))
	for i, seg := range raw {
		segments[i] = unescapeSegment(seg)
	}
	return Pointer{segments: segments}
}

func unescapeSegment(seg string) string {
	if !strings.Contains(seg, "~") {
		return seg
	}
	var b strings.Builder
	for i := 0; i < len(seg); i++ {
		if seg[i] == '~' && i+1 < len(seg) {
			switch seg[i+1] {
			case '0':
				b.WriteByte('~')
				i++
				continue
			case '1':
				b.WriteByte('/')
				i++
				continue
			}
		}
		b.WriteByte(seg[i])
	}
	return b.String()
}

func escapeSegment(seg string) string {
	seg = strings.ReplaceAll(seg, "~", "~0")
	seg = strings.ReplaceAll(seg, "/", "~1")
	return seg
}

// String renders the Pointer back to its canonical "/"-delimited form.
func (p Pointer) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	parts := make([]string, len(p.segments))
	for i, seg := range p.segments {
		parts[i] = escapeSegment(seg)
	}
	return "/" + strings.Join(parts, "/")
}

// IsRoot reports whether the pointer addresses the document root.
func (p Pointer) IsRoot() bool { return len(p.segments) == 0 }

// Copy returns an independent copy of the pointer.
func (p Pointer) Copy() Pointer {
	other := make([]string, len(p.segments))
	copy(other, p.segments)
	return Pointer{segments: other}
}

// Append returns a new Pointer addressing seg underneath p, used when an
// object-equality comparison decomposes into one leaf per field (spec.md
// §4.3 "Object comparisons").
func (p Pointer) Append(seg string) Pointer {
	next := make([]string, len(p.segments)+1)
	copy(next, p.segments)
	next[len(p.segments)] = seg
	return Pointer{segments: next}
}

// Resolve walks an event Value along the pointer's segments. It returns
// (value, true) if the path resolves to any value, including an explicit
// null, and (Value{}, false) if any segment is missing.
func (p Pointer) Resolve(event Value) (Value, bool) {
	cur := event
	for _, seg := range p.segments {
		switch cur.Kind() {
		case KindObject:
			_, fields, _ := cur.Object()
			next, ok := fields[seg]
			if !ok {
				return Value{}, false
			}
			cur = next
		case KindArray:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return Value{}, false
			}
			items, _ := cur.Array()
			if idx < 0 || idx >= len(items) {
				return Value{}, false
			}
			cur = items[idx]
		default:
			return Value{}, false
		}
	}
	return cur, true
}
