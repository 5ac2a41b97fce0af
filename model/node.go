package model

import "strings"

// Element names understood by the table schema.
const (
	Root      = "$root"
	Text      = "$text"
	Table     = "table"
	TableRow  = "tableRow"
	TableCell = "tableCell"
	Paragraph = "paragraph"
)

// Table attribute names. Both hold positive integers and are absent when the
// count is zero.
const (
	AttrHeadingRows    = "headingRows"
	AttrHeadingColumns = "headingColumns"
)

// NodeType represents the type of model node
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a single node of the destination (model) tree. Element nodes have a
// name, attributes and ordered children; text nodes carry data only. Nodes are
// created through a [Writer] and mutated only through writer operations.
type Node struct {
	nodeType NodeType
	name     string
	data     string
	attrs    map[string]any
	parent   *Node
	children []*Node
}

// NewElement creates a detached element node. A nil attrs map is allowed.
func NewElement(name string, attrs map[string]any) *Node {
	n := &Node{
		nodeType: ElementNode,
		name:     name,
	}
	for k, v := range attrs {
		n.SetAttribute(k, v)
	}
	return n
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{
		nodeType: TextNode,
		name:     Text,
		data:     data,
	}
}

// Type returns the node type.
func (n *Node) Type() NodeType { return n.nodeType }

// Name returns the element name, or "$text" for text nodes.
func (n *Node) Name() string { return n.name }

// Data returns the text content of a text node ("" for elements).
func (n *Node) Data() string { return n.data }

// Parent returns the parent node, or nil for a detached node or the root.
func (n *Node) Parent() *Node { return n.parent }

// Root walks up to the topmost ancestor.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil if out of bounds.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the children in document order. The returned slice is a
// copy; mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Index returns the node's offset in its parent, or -1 for a detached node.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Attribute returns the named attribute and whether it is set.
func (n *Node) Attribute(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// IntAttribute returns the named attribute as an int, or 0 if absent or not
// an int.
func (n *Node) IntAttribute(name string) int {
	if v, ok := n.attrs[name]; ok {
		if i, ok := v.(int); ok {
			return i
		}
	}
	return 0
}

// HasAttribute reports whether the named attribute is set.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// SetAttribute sets an attribute on the node.
func (n *Node) SetAttribute(name string, value any) {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[name] = value
}

// AttributeCount returns the number of attributes set on the node.
func (n *Node) AttributeCount() int { return len(n.attrs) }

// InnerText concatenates the data of all text descendants in document order.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.innerText(&sb)
	return sb.String()
}

func (n *Node) innerText(sb *strings.Builder) {
	if n.nodeType == TextNode {
		sb.WriteString(n.data)
		return
	}
	for _, c := range n.children {
		c.innerText(sb)
	}
}

// insertChild splices node into the children at offset. Internal; positions
// are validated by the writer.
func (n *Node) insertChild(offset int, child *Node) {
	n.children = append(n.children, nil)
	copy(n.children[offset+1:], n.children[offset:])
	n.children[offset] = child
	child.parent = n
}

// truncateChildren detaches and returns all children from offset onward.
func (n *Node) truncateChildren(offset int) []*Node {
	moved := append([]*Node(nil), n.children[offset:]...)
	n.children = n.children[:offset]
	for _, c := range moved {
		c.parent = nil
	}
	return moved
}
