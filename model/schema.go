package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// Schema records which child element names each parent element admits. It is
// the constraint consulted before any insertion; content that does not fit
// anywhere is dropped by the converters rather than forced in.
type Schema struct {
	allowed map[string]map[string]bool
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{allowed: make(map[string]map[string]bool)}
}

// Register allows the given child names inside parent. Repeated calls for the
// same parent accumulate.
func (s *Schema) Register(parent string, children ...string) {
	set := s.allowed[parent]
	if set == nil {
		set = make(map[string]bool)
		s.allowed[parent] = set
	}
	for _, c := range children {
		set[c] = true
	}
}

// CheckChild reports whether a child with the given name may be placed
// directly inside a parent with the given name.
func (s *Schema) CheckChild(parent, child string) bool {
	return s.allowed[parent][child]
}

// DefaultSchema returns the schema of the table document model: tables hold
// rows, rows hold cells, cells hold paragraphs, paragraphs hold text.
func DefaultSchema() *Schema {
	s := NewSchema()
	s.Register(Root, Table, Paragraph)
	s.Register(Table, TableRow)
	s.Register(TableRow, TableCell)
	s.Register(TableCell, Paragraph)
	s.Register(Paragraph, Text)
	return s
}

// Validate walks the tree under root and reports every violation of the
// schema and of the table-model invariants, combined into a single error
// (nil when the tree is valid). Checked invariants: every child is allowed
// in its parent, every table has at least one row, every cell has at least
// one child, and heading attributes are positive integers (absence means
// zero; an explicit zero is a violation).
func (s *Schema) Validate(root *Node) error {
	var err error
	walk(root, func(n *Node) {
		for _, c := range n.Children() {
			if !s.CheckChild(n.Name(), c.Name()) {
				err = multierr.Append(err, fmt.Errorf("element %q does not allow child %q", n.Name(), c.Name()))
			}
		}
		switch n.Name() {
		case Table:
			if n.ChildCount() == 0 {
				err = multierr.Append(err, fmt.Errorf("table has no rows"))
			}
			for _, attr := range []string{AttrHeadingRows, AttrHeadingColumns} {
				if v, ok := n.Attribute(attr); ok {
					if i, isInt := v.(int); !isInt || i <= 0 {
						err = multierr.Append(err, fmt.Errorf("attribute %s must be a positive integer, got %v", attr, v))
					}
				}
			}
		case TableCell:
			if n.ChildCount() == 0 {
				err = multierr.Append(err, fmt.Errorf("table cell has no content"))
			}
		}
	})
	return err
}

// walk visits every element node in document order.
func walk(n *Node, visit func(*Node)) {
	if n.Type() != ElementNode {
		return
	}
	visit(n)
	for _, c := range n.Children() {
		walk(c, visit)
	}
}
