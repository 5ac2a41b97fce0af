package model

import "fmt"

// Writer performs all mutations of a model tree. Converters never touch node
// internals directly; they create nodes and request insertions and splits
// through a writer, so a failed conversion can leave the tree untouched.
type Writer struct{}

// NewWriter creates a writer.
func NewWriter() *Writer {
	return &Writer{}
}

// CreateElement creates a detached element node.
func (w *Writer) CreateElement(name string, attrs map[string]any) *Node {
	return NewElement(name, attrs)
}

// CreateText creates a detached text node.
func (w *Writer) CreateText(data string) *Node {
	return NewText(data)
}

// Insert places a detached node at the given position.
func (w *Writer) Insert(node *Node, pos Position) error {
	if node == nil {
		return fmt.Errorf("insert: nil node")
	}
	if node.parent != nil {
		return fmt.Errorf("insert: node %q is already attached", node.Name())
	}
	if !pos.Valid() {
		return fmt.Errorf("insert: offset %d out of bounds", pos.Offset)
	}
	pos.Parent.insertChild(pos.Offset, node)
	return nil
}

// InsertElement creates an element and places it at the given position,
// returning the new node.
func (w *Writer) InsertElement(name string, attrs map[string]any, pos Position) (*Node, error) {
	node := NewElement(name, attrs)
	if err := w.Insert(node, pos); err != nil {
		return nil, err
	}
	return node, nil
}

// Append places a detached node after the last child of parent.
func (w *Writer) Append(node *Node, parent *Node) error {
	return w.Insert(node, PositionAt(parent, -1))
}

// Split divides the position's parent element in two at the position. The
// original keeps the children before the position; a new element with the
// same name and attributes receives the children after it and is inserted as
// the next sibling of the original. Returns the second half. The root and
// text nodes cannot be split.
func (w *Writer) Split(pos Position) (*Node, error) {
	if !pos.Valid() {
		return nil, fmt.Errorf("split: invalid position")
	}
	elem := pos.Parent
	if elem.Type() != ElementNode {
		return nil, fmt.Errorf("split: cannot split a text node")
	}
	if elem.Parent() == nil {
		return nil, fmt.Errorf("split: cannot split the root element %q", elem.Name())
	}

	rest := NewElement(elem.Name(), elem.attrs)
	for _, c := range elem.truncateChildren(pos.Offset) {
		rest.insertChild(rest.ChildCount(), c)
	}
	elem.Parent().insertChild(elem.Index()+1, rest)
	return rest, nil
}
