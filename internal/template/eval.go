package template

import (
	"strings"
)

// eval walks a node tree and writes the rendered output. Unresolvable
// paths write nothing; the walk itself cannot fail.
func eval(b *strings.Builder, nodes []Node, sc *scope) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			b.WriteString(n.Text)
		case *VariableNode:
			if v, ok := sc.resolve(n.Path); ok {
				b.WriteString(v.Text())
			}
		case *PartialNode:
			// Out-of-scope partial references pass through verbatim.
			b.WriteString("{{" + n.Raw + "}}")
		case *IfNode:
			v, _ := sc.resolve(n.Path)
			if v.Truthy() {
				eval(b, n.Then, sc)
			} else {
				eval(b, n.Else, sc)
			}
		case *UnlessNode:
			v, _ := sc.resolve(n.Path)
			if !v.Truthy() {
				eval(b, n.Body, sc)
			}
		case *EachNode:
			evalEach(b, n, sc)
		}
	}
}

// evalEach iterates a list value. A path that resolves to anything other
// than a list produces no output. Each item gets its own scope frame:
// the item as {{this}}, the item's direct fields (for map items), and
// the loop metadata {{@index}} and {{@last}}.
func evalEach(b *strings.Builder, n *EachNode, sc *scope) {
	v, ok := sc.resolve(n.Path)
	if !ok || v.Kind() != KindList {
		return
	}
	last := len(v.list) - 1
	for i, item := range v.list {
		frame := sc.child()
		if item.Kind() == KindMap {
			for k, fv := range item.m {
				frame.vars[k] = fv
			}
		}
		frame.vars["this"] = item
		frame.vars["@index"] = FromAny(i)
		frame.vars["@last"] = FromAny(i == last)
		eval(b, n.Body, frame)
	}
}
