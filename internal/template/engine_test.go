package template

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderPlainText(t *testing.T) {
	// Templates without directives render unchanged.
	inputs := []string{
		"",
		"Hello, world!",
		"# Study Notes\n\n- item one\n- item two\n",
		"single { brace } pairs are not directives",
	}
	for _, in := range inputs {
		got, err := Render(in, nil)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", in, err)
		}
		if got != in {
			t.Errorf("Render(%q) = %q, want identity", in, got)
		}
	}
}

func TestRenderVariables(t *testing.T) {
	tests := []struct {
		name string
		src  string
		data map[string]any
		want string
	}{
		{
			name: "simple substitution",
			src:  "Hello {{name}}!",
			data: map[string]any{"name": "World"},
			want: "Hello World!",
		},
		{
			name: "missing variable renders empty",
			src:  "Hello {{name}}!",
			data: map[string]any{},
			want: "Hello !",
		},
		{
			name: "dot path",
			src:  "{{study.name}} ({{study.phase}})",
			data: map[string]any{"study": map[string]any{"name": "Onboarding", "phase": "discovery"}},
			want: "Onboarding (discovery)",
		},
		{
			name: "dot path through non-map renders empty",
			src:  "[{{study.name.first}}]",
			data: map[string]any{"study": map[string]any{"name": "Onboarding"}},
			want: "[]",
		},
		{
			name: "number formatting",
			src:  "{{year}} / {{score}}",
			data: map[string]any{"year": 2024, "score": 4.5},
			want: "2024 / 4.5",
		},
		{
			name: "whitespace inside braces",
			src:  "{{  name  }}",
			data: map[string]any{"name": "x"},
			want: "x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.src, tt.data)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderConditionals(t *testing.T) {
	src := "{{#if isActive}}Active{{else}}Inactive{{/if}}"
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{"true bool", map[string]any{"isActive": true}, "Active"},
		{"false bool", map[string]any{"isActive": false}, "Inactive"},
		{"missing key", map[string]any{}, "Inactive"},
		{"non-empty string", map[string]any{"isActive": "yes"}, "Active"},
		{"empty string", map[string]any{"isActive": ""}, "Inactive"},
		{"literal false string", map[string]any{"isActive": "false"}, "Inactive"},
		{"literal zero string", map[string]any{"isActive": "0"}, "Inactive"},
		{"zero number", map[string]any{"isActive": 0}, "Inactive"},
		// The truthiness rule is a literal string comparison, so a
		// trailing space defeats it.
		{"zero with trailing space", map[string]any{"isActive": "0 "}, "Active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(src, tt.data)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("if without else", func(t *testing.T) {
		got, err := Render("{{#if ok}}yes{{/if}}", map[string]any{})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if got != "" {
			t.Errorf("Render() = %q, want empty", got)
		}
	})
}

func TestRenderEach(t *testing.T) {
	t.Run("string items", func(t *testing.T) {
		got, err := Render("{{#each items}}- {{this}}\n{{/each}}", map[string]any{"items": []any{"a", "b"}})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "- a\n- b\n"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("non-list value renders empty", func(t *testing.T) {
		got, err := Render("{{#each items}}- {{this}}\n{{/each}}", map[string]any{"items": "not-a-list"})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if got != "" {
			t.Errorf("Render() = %q, want empty", got)
		}
	})

	t.Run("missing path renders empty", func(t *testing.T) {
		got, err := Render("{{#each items}}x{{/each}}", nil)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if got != "" {
			t.Errorf("Render() = %q, want empty", got)
		}
	})

	t.Run("object item fields", func(t *testing.T) {
		data := map[string]any{"questions": []any{
			map[string]any{"text": "Why?", "category": "core"},
			map[string]any{"text": "How?", "category": "follow-up"},
		}}
		got, err := Render("{{#each questions}}{{text}} [{{category}}]\n{{/each}}", data)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "Why? [core]\nHow? [follow-up]\n"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("unless last separator", func(t *testing.T) {
		got, err := Render("{{#each rows}}{{#unless @last}}{{this}}, {{/unless}}{{/each}}",
			map[string]any{"rows": []any{1, 2, 3}})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		// Only content inside the unless block is skipped for the final
		// item, so the last row itself is dropped with its separator.
		if want := "1, 2, "; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("trailing separator outside unless", func(t *testing.T) {
		got, err := Render("{{#each rows}}{{this}}{{#unless @last}}, {{/unless}}{{/each}}",
			map[string]any{"rows": []any{"a", "b", "c"}})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "a, b, c"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("index metadata", func(t *testing.T) {
		got, err := Render("{{#each rows}}{{@index}}:{{this}} {{/each}}",
			map[string]any{"rows": []any{"a", "b"}})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "0:a 1:b "; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})
}

func TestRenderNested(t *testing.T) {
	t.Run("conditional scoped per item", func(t *testing.T) {
		// A field of one item must not leak into the scope of the next.
		data := map[string]any{"sources": []any{
			map[string]any{"title": "Diary study", "url": "https://a.example"},
			map[string]any{"title": "Field notes"},
		}}
		src := "{{#each sources}}{{title}}{{#if url}} <{{url}}>{{/if}}\n{{/each}}"
		got, err := Render(src, data)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "Diary study <https://a.example>\nField notes\n"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("each inside if", func(t *testing.T) {
		data := map[string]any{"show": "yes", "items": []any{"x", "y"}}
		got, err := Render("{{#if show}}{{#each items}}{{this}};{{/each}}{{/if}}", data)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "x;y;"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("each inside each", func(t *testing.T) {
		data := map[string]any{"groups": []any{
			map[string]any{"name": "A", "tags": []any{"1", "2"}},
			map[string]any{"name": "B", "tags": []any{"3"}},
		}}
		got, err := Render("{{#each groups}}{{name}}:{{#each tags}}{{this}}{{/each}} {{/each}}", data)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "A:12 B:3 "; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("outer scope visible inside each", func(t *testing.T) {
		data := map[string]any{"study": "Checkout", "items": []any{"a"}}
		got, err := Render("{{#each items}}{{study}}/{{this}}{{/each}}", data)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "Checkout/a"; got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})
}

func TestRenderMalformed(t *testing.T) {
	bad := []string{
		"Hello {{name!",
		"Hello name}}!",
		"{{#if a}}no close",
		"{{#each a}}{{/if}}",
		"stray {{/each}}",
		"{{#if a}}x{{else}}y{{else}}z{{/if}}",
		"}}{{",
	}
	for _, src := range bad {
		if _, err := Render(src, map[string]any{"a": "1"}); !errors.Is(err, ErrRender) {
			t.Errorf("Render(%q) error = %v, want ErrRender", src, err)
		}
	}
}

func TestRenderWithPartials(t *testing.T) {
	t.Run("expansion then render", func(t *testing.T) {
		got, err := RenderWithPartials("Header\n{{>footer}}",
			map[string]string{"footer": "Footer {{year}}"},
			map[string]any{"year": 2024})
		if err != nil {
			t.Fatalf("RenderWithPartials() error: %v", err)
		}
		if want := "Header\nFooter 2024"; got != want {
			t.Errorf("RenderWithPartials() = %q, want %q", got, want)
		}
	})

	t.Run("partial with directives", func(t *testing.T) {
		got, err := RenderWithPartials("{{>list}}",
			map[string]string{"list": "{{#each items}}* {{this}}\n{{/each}}"},
			map[string]any{"items": []any{"a", "b"}})
		if err != nil {
			t.Fatalf("RenderWithPartials() error: %v", err)
		}
		if want := "* a\n* b\n"; got != want {
			t.Errorf("RenderWithPartials() = %q, want %q", got, want)
		}
	})

	t.Run("no recursive expansion", func(t *testing.T) {
		// A partial referencing another partial is expanded only once;
		// the inner reference passes through verbatim.
		got, err := RenderWithPartials("{{>outer}}",
			map[string]string{"outer": "o({{>inner}})", "inner": "i"},
			nil)
		if err != nil {
			t.Fatalf("RenderWithPartials() error: %v", err)
		}
		if want := "o({{>inner}})"; got != want {
			t.Errorf("RenderWithPartials() = %q, want %q", got, want)
		}
	})

	t.Run("unknown partial passes through", func(t *testing.T) {
		got, err := RenderWithPartials("a {{> nope}} b", nil, nil)
		if err != nil {
			t.Fatalf("RenderWithPartials() error: %v", err)
		}
		if want := "a {{> nope}} b"; got != want {
			t.Errorf("RenderWithPartials() = %q, want %q", got, want)
		}
	})
}

func TestRenderConcurrent(t *testing.T) {
	// The engine holds no shared state; parallel renders must not interfere.
	src := "{{#each items}}{{this}}{{#unless @last}},{{/unless}}{{/each}}"
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			out, err := Render(src, map[string]any{"items": []any{"a", "b", "c"}})
			if err != nil {
				out = "error: " + err.Error()
			}
			done <- out
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != "a,b,c" {
			t.Errorf("concurrent Render() = %q, want %q", got, "a,b,c")
		}
	}
}

func TestRenderLargeInput(t *testing.T) {
	// Deep nesting through repeated block openers stays linear and
	// terminates; the old rewrite-until-stable strategy could not make
	// that guarantee.
	var sb strings.Builder
	const depth = 200
	for i := 0; i < depth; i++ {
		sb.WriteString("{{#if on}}")
	}
	sb.WriteString("core")
	for i := 0; i < depth; i++ {
		sb.WriteString("{{/if}}")
	}
	got, err := Render(sb.String(), map[string]any{"on": "1"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != "core" {
		t.Errorf("Render() = %q, want %q", got, "core")
	}
}
