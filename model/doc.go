// Package model provides the destination tree for table conversion.
//
// This package defines the normalized, schema-constrained structure that
// conversion produces. Unlike the HTML view tree, the model has no notion of
// table sections: heading rows and columns exist only as integer counts on
// the table node.
//
// # Nodes
//
// The [Node] type represents both elements and text. Element names are the
// small closed set of the table schema:
//
//   - table - carries optional headingRows/headingColumns attributes
//   - tableRow, tableCell - structure, with no per-cell heading flag
//   - paragraph - minimal block content inside a cell
//   - $root - the fragment root, $text - text nodes
//
// # Positions and writing
//
// A [Position] addresses a gap between children; a [Range] spans two
// positions. All mutation goes through a [Writer]:
//
//	w := model.NewWriter()
//	table := w.CreateElement(model.Table, nil)
//	err := w.Insert(table, model.PositionAt(root, 0))
//
// [Writer.Split] divides an element in two at a position, which is how
// converters make room for content the schema disallows at the original
// insertion point.
//
// # Schema
//
// The [Schema] records which children each element admits. [DefaultSchema]
// describes the table document model; [Schema.Validate] checks a finished
// tree against it and against the table invariants (no empty tables, no
// contentless cells, no zero-valued heading attributes).
package model
