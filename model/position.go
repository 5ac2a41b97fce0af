package model

// Position is a location in the model tree: the gap before the child at
// Offset inside Parent. Offset ranges from 0 (before the first child) to
// Parent.ChildCount() (after the last child).
type Position struct {
	Parent *Node
	Offset int
}

// PositionAt returns a position at the given offset inside parent. A negative
// offset means "at the end".
func PositionAt(parent *Node, offset int) Position {
	if offset < 0 {
		offset = parent.ChildCount()
	}
	return Position{Parent: parent, Offset: offset}
}

// PositionBefore returns the position immediately before node in its parent.
func PositionBefore(node *Node) Position {
	return Position{Parent: node.Parent(), Offset: node.Index()}
}

// PositionAfter returns the position immediately after node in its parent.
func PositionAfter(node *Node) Position {
	return Position{Parent: node.Parent(), Offset: node.Index() + 1}
}

// Valid reports whether the position points into an existing node at a legal
// offset.
func (p Position) Valid() bool {
	return p.Parent != nil && p.Offset >= 0 && p.Offset <= p.Parent.ChildCount()
}

// NodeBefore returns the child directly before the position, or nil.
func (p Position) NodeBefore() *Node {
	if p.Parent == nil {
		return nil
	}
	return p.Parent.Child(p.Offset - 1)
}

// NodeAfter returns the child directly after the position, or nil.
func (p Position) NodeAfter() *Node {
	if p.Parent == nil {
		return nil
	}
	return p.Parent.Child(p.Offset)
}

// Range is a span in the model tree between two positions.
type Range struct {
	Start Position
	End   Position
}

// RangeOn returns the range spanning exactly node.
func RangeOn(node *Node) Range {
	return Range{Start: PositionBefore(node), End: PositionAfter(node)}
}

// Empty reports whether the range spans nothing.
func (r Range) Empty() bool {
	return r.Start == r.End
}
