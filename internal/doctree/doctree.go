// Package doctree models the parsed document tree handed over by the
// documentation build pipeline.
//
// A tree is made of typed nodes. Each node exposes a kind, an attribute
// mapping, ordered children and, for text-bearing nodes, the raw source
// text. Nodes are treated as immutable once the tree is assembled.
package doctree

// Kind identifies the type of a node.
type Kind string

const (
	KindDocument       Kind = "document"
	KindSection        Kind = "section"
	KindTitle          Kind = "title"
	KindParagraph      Kind = "paragraph"
	KindBlockQuote     Kind = "block_quote"
	KindLiteralBlock   Kind = "literal_block"
	KindRaw            Kind = "raw"
	KindBulletList     Kind = "bullet_list"
	KindEnumeratedList Kind = "enumerated_list"
	KindListItem       Kind = "list_item"
	KindTable          Kind = "table"
	KindColspec        Kind = "colspec"
	KindTHead          Kind = "thead"
	KindTBody          Kind = "tbody"
	KindRow            Kind = "row"
	KindEntry          Kind = "entry"
	KindText           Kind = "text"
	KindSystemMessage  Kind = "system_message"
)

// Node is one element of the parsed document tree.
type Node struct {
	Kind       Kind           `json:"kind"`
	Attributes map[string]any `json:"attributes,omitempty"`
	RawSource  string         `json:"rawsource,omitempty"`
	Children   []*Node        `json:"children,omitempty"`

	parent *Node
}

// New creates a node of the given kind.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewText creates a node of the given kind carrying raw source text.
func NewText(kind Kind, rawsource string) *Node {
	return &Node{Kind: kind, RawSource: rawsource}
}

// Append adds children to the node and links their parent pointers.
// It returns the node for chaining while assembling trees.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
	}
	n.Children = append(n.Children, children...)
	return n
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(name string, value any) *Node {
	if n.Attributes == nil {
		n.Attributes = make(map[string]any)
	}
	n.Attributes[name] = value
	return n
}

// IntAttr returns the named attribute as an int. JSON decoding yields
// float64 for numbers, so numeric variants are normalized here.
func (n *Node) IntAttr(name string) (int, bool) {
	switch v := n.Attributes[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// StringAttr returns the named attribute as a string, or "" when the
// attribute is absent or not a string.
func (n *Node) StringAttr(name string) string {
	if v, ok := n.Attributes[name].(string); ok {
		return v
	}
	return ""
}

// Walk traverses the subtree rooted at n depth-first, calling fn with
// entering=true before a node's children and entering=false after them.
func Walk(n *Node, fn func(n *Node, entering bool)) {
	fn(n, true)
	for _, c := range n.Children {
		Walk(c, fn)
	}
	fn(n, false)
}
