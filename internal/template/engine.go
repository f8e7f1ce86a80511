package template

import (
	"errors"
	"regexp"
	"strings"
)

// ErrRender is the single failure the engine reports. Rendering either
// fully succeeds or fails with this error; no positional diagnostics are
// attached. Missing variables are not failures (they render empty).
var ErrRender = errors.New("template rendering failed")

var partialRefPattern = regexp.MustCompile(`\{\{>\s*([\w@.-]+)\s*\}\}`)

// Render evaluates template source against a context and returns the
// rendered text. The context may hold nested maps, lists, strings,
// numbers, and booleans; values are addressed by dot-path.
func Render(src string, data map[string]any) (out string, err error) {
	// A panic anywhere in the pipeline is normalized to ErrRender.
	defer func() {
		if recover() != nil {
			out, err = "", ErrRender
		}
	}()

	// Cheap well-formedness gate before any parsing.
	if strings.Count(src, "{{") != strings.Count(src, "}}") {
		return "", ErrRender
	}

	toks, lerr := lex(src)
	if lerr != nil {
		return "", ErrRender
	}
	nodes, perr := parse(toks)
	if perr != nil {
		return "", ErrRender
	}

	var b strings.Builder
	eval(&b, nodes, newScope(data))
	return b.String(), nil
}

// RenderWithPartials expands every {{>name}} reference with the raw text
// registered under that name, then renders the combined source. The
// expansion is a single textual pass: directives inside a partial are
// evaluated normally, but a partial referencing another partial is not
// expanded again. Unregistered names pass through to the output verbatim.
func RenderWithPartials(src string, partials map[string]string, data map[string]any) (string, error) {
	expanded := partialRefPattern.ReplaceAllStringFunc(src, func(ref string) string {
		name := partialRefPattern.FindStringSubmatch(ref)[1]
		if raw, ok := partials[name]; ok {
			return raw
		}
		return ref
	})
	return Render(expanded, data)
}
