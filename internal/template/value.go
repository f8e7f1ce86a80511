package template

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// Value is a tagged variant for context data. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	m    map[string]Value
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// FromAny converts an arbitrary Go value (including YAML-decoded
// map[string]any trees) into a Value. Unrecognized types fall back to
// their fmt.Sprint string form.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case bool:
		return Value{kind: KindBool, b: t}
	case string:
		return Value{kind: KindString, str: t}
	case int:
		return Value{kind: KindNumber, num: float64(t)}
	case int32:
		return Value{kind: KindNumber, num: float64(t)}
	case int64:
		return Value{kind: KindNumber, num: float64(t)}
	case uint:
		return Value{kind: KindNumber, num: float64(t)}
	case float32:
		return Value{kind: KindNumber, num: float64(t)}
	case float64:
		return Value{kind: KindNumber, num: t}
	case []any:
		list := make([]Value, len(t))
		for i, item := range t {
			list[i] = FromAny(item)
		}
		return Value{kind: KindList, list: list}
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			m[k] = FromAny(item)
		}
		return Value{kind: KindMap, m: m}
	}

	// Generic slices and maps (e.g. []string, map[string]string).
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			list[i] = FromAny(rv.Index(i).Interface())
		}
		return Value{kind: KindList, list: list}
	case reflect.Map:
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = FromAny(iter.Value().Interface())
		}
		return Value{kind: KindMap, m: m}
	}

	return Value{kind: KindString, str: fmt.Sprint(x)}
}

// Text returns the substitution form of a Value. Null and maps render
// empty; lists render as a comma-joined sequence of their items.
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.Text()
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// Truthy reports whether a Value selects the if-branch of a conditional.
// The rule is textual: a value is falsy when its Text form is empty or is
// the literal "false" or "0". Numeric zero and boolean false are therefore
// falsy through their string forms, while "0 " (trailing space) is truthy.
// Non-empty maps are truthy even though their Text form is empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindMap:
		return len(v.m) > 0
	}
	t := v.Text()
	return t != "" && t != "false" && t != "0"
}

// scope is one frame of the evaluation context stack. Each #each item
// pushes a child frame; name lookup walks frames innermost-out.
type scope struct {
	vars   map[string]Value
	parent *scope
}

func newScope(data map[string]any) *scope {
	vars := make(map[string]Value, len(data))
	for k, v := range data {
		vars[k] = FromAny(v)
	}
	return &scope{vars: vars}
}

func (s *scope) child() *scope {
	return &scope{vars: make(map[string]Value), parent: s}
}

func (s *scope) lookup(name string) (Value, bool) {
	for f := s; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// resolve walks a dot-path tier by tier. The first missing key, or an
// attempt to index into a non-map, reports not found.
func (s *scope) resolve(path string) (Value, bool) {
	segs := strings.Split(path, ".")
	v, ok := s.lookup(segs[0])
	if !ok {
		return Value{}, false
	}
	for _, seg := range segs[1:] {
		if v.kind != KindMap {
			return Value{}, false
		}
		v, ok = v.m[seg]
		if !ok {
			return Value{}, false
		}
	}
	return v, true
}
