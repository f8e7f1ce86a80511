package template

// Node is any element of a parsed template tree.
type Node interface {
	node()
}

// TextNode is literal text between directives.
type TextNode struct {
	Text string
}

func (*TextNode) node() {}

// VariableNode substitutes the value at a dot-path: {{a.b.c}}
type VariableNode struct {
	Path string
}

func (*VariableNode) node() {}

// IfNode is a conditional block, with an optional else branch:
// {{#if path}}...{{else}}...{{/if}}
type IfNode struct {
	Path string
	Then []Node
	Else []Node
}

func (*IfNode) node() {}

// UnlessNode is an inverted conditional: {{#unless path}}...{{/unless}}
type UnlessNode struct {
	Path string
	Body []Node
}

func (*UnlessNode) node() {}

// EachNode iterates a list: {{#each path}}...{{/each}}
type EachNode struct {
	Path string
	Body []Node
}

func (*EachNode) node() {}

// PartialNode is a partial reference that was not expanded before
// parsing. It renders back to its literal source text.
type PartialNode struct {
	Name string
	Raw  string // original inner directive content, e.g. "> footer"
}

func (*PartialNode) node() {}
