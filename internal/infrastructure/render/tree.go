package render

// NodeKind identifies the role of one node in a render tree. Backends map
// kinds to their own drawing primitives.
type NodeKind string

const (
	NodeDocument  NodeKind = "document"
	NodeSection   NodeKind = "section"
	NodeBlock     NodeKind = "block"
	NodeBadge     NodeKind = "badge"
	NodeHeading   NodeKind = "heading"
	NodeLine      NodeKind = "line"
	NodeTable     NodeKind = "table"
	NodeRow       NodeKind = "row"
	NodeCell      NodeKind = "cell"
	NodeWatermark NodeKind = "watermark"
	NodeSignature NodeKind = "signature_line"
	NodeStampBox  NodeKind = "stamp_box"
)

// Node is one element of the backend-neutral render tree the assembler emits.
// Text carries the primary-language value; Subtitle carries the
// secondary-language value in dual-language mode and is empty otherwise.
type Node struct {
	Kind     NodeKind          `json:"kind"`
	Key      string            `json:"key,omitempty"`
	Text     string            `json:"text,omitempty"`
	Subtitle string            `json:"subtitle,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// NewNode creates a node of the given kind
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// WithKey sets the node key and returns the node for chaining
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// WithText sets the primary and subtitle text and returns the node
func (n *Node) WithText(text, subtitle string) *Node {
	n.Text = text
	n.Subtitle = subtitle
	return n
}

// SetAttr sets one string attribute, allocating the map on first use
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns the attribute value for key, or empty string
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// Append adds child nodes and returns the parent. Nil children are skipped so
// builders can return nil for omitted lines.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// FindAll returns every descendant (including n itself) of the given kind in
// depth-first order
func (n *Node) FindAll(kind NodeKind) []*Node {
	var out []*Node
	n.walk(func(node *Node) {
		if node.Kind == kind {
			out = append(out, node)
		}
	})
	return out
}

// FindByKey returns the first descendant (including n itself) with the given
// key, or nil
func (n *Node) FindByKey(key string) *Node {
	var found *Node
	n.walk(func(node *Node) {
		if found == nil && node.Key == key {
			found = node
		}
	})
	return found
}

// AllText returns the concatenated Text and Subtitle of the whole subtree,
// depth-first, separated by newlines. Intended for assertions and text search,
// not for display.
func (n *Node) AllText() string {
	var parts []string
	n.walk(func(node *Node) {
		if node.Text != "" {
			parts = append(parts, node.Text)
		}
		if node.Subtitle != "" {
			parts = append(parts, node.Subtitle)
		}
	})
	return joinLines(parts)
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func joinLines(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p
	}
	return out
}
