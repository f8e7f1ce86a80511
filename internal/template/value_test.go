package template

import (
	"testing"
)

func TestFromAnyText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"float", 4.25, "4.25"},
		{"whole float drops decimals", 2024.0, "2024"},
		{"list joins with comma", []any{"a", "b"}, "a,b"},
		{"typed string slice", []string{"x", "y"}, "x,y"},
		{"map renders empty", map[string]any{"k": "v"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAny(tt.in).Text(); got != tt.want {
				t.Errorf("FromAny(%v).Text() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"false string", "false", false},
		{"zero string", "0", false},
		{"zero string trailing space", "0 ", true},
		{"nonempty string", "no", true},
		{"bool false", false, false},
		{"bool true", true, true},
		{"zero number", 0, false},
		{"nonzero number", 7, true},
		{"empty list", []any{}, false},
		{"nonempty list", []any{"a"}, true},
		{"empty map", map[string]any{}, false},
		{"nonempty map", map[string]any{"k": "v"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAny(tt.in).Truthy(); got != tt.want {
				t.Errorf("FromAny(%v).Truthy() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScopeResolve(t *testing.T) {
	sc := newScope(map[string]any{
		"study": map[string]any{
			"name": "Checkout",
			"meta": map[string]any{"phase": "discovery"},
		},
		"flat": "x",
	})

	t.Run("single segment", func(t *testing.T) {
		v, ok := sc.resolve("flat")
		if !ok || v.Text() != "x" {
			t.Errorf("resolve(flat) = (%q, %v), want (x, true)", v.Text(), ok)
		}
	})

	t.Run("nested path", func(t *testing.T) {
		v, ok := sc.resolve("study.meta.phase")
		if !ok || v.Text() != "discovery" {
			t.Errorf("resolve(study.meta.phase) = (%q, %v), want (discovery, true)", v.Text(), ok)
		}
	})

	t.Run("missing tier", func(t *testing.T) {
		if _, ok := sc.resolve("study.owner.name"); ok {
			t.Error("resolve(study.owner.name) found a value, want not found")
		}
	})

	t.Run("index into non-map", func(t *testing.T) {
		if _, ok := sc.resolve("flat.inner"); ok {
			t.Error("resolve(flat.inner) found a value, want not found")
		}
	})

	t.Run("child frame shadows parent", func(t *testing.T) {
		frame := sc.child()
		frame.vars["flat"] = FromAny("shadowed")
		if v, _ := frame.resolve("flat"); v.Text() != "shadowed" {
			t.Errorf("child resolve(flat) = %q, want shadowed", v.Text())
		}
		if v, _ := sc.resolve("flat"); v.Text() != "x" {
			t.Errorf("parent resolve(flat) = %q, want x", v.Text())
		}
	})
}
