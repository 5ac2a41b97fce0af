// Package upcast converts HTML view trees into the table document model.
//
// Conversion is driven by a [Dispatcher]: an ordered table of [Handler]
// functions keyed by view element name, registered once at startup. The
// dispatcher walks the view tree top-down; handlers build model nodes
// bottom-up through the writer and delegate nested content back to the
// dispatcher, so the whole pass is plain synchronous recursion.
//
//	d := upcast.NewDispatcher()
//	upcast.RegisterDefaults(d)
//	fragment := d.Convert(body, nil, nil)
//
// Per-pass state lives in a [Context]: the destination writer and schema, a
// consumption ledger that prevents double conversion of a view node, and a
// logger. Handlers registered before [RegisterDefaults] can claim elements
// ahead of the built-in conversion by consuming them.
//
// # Placement and splitting
//
// Before inserting, a handler asks [Context.SplitToAllowedParent] for a
// schema-valid position. When the cursor sits somewhere the schema disallows
// the new element, ancestors are split until an admitting parent is reached,
// and the [Placement] carries a continuation cursor inside the split
// remainder. When no ancestor admits the element the handler aborts its
// subtree silently: nothing is mutated, the source stays unconsumed, and
// conversion proceeds with the siblings. None of the failure paths here are
// fatal; partially valid input degrades to "skip this node".
//
// # Tables
//
// The table handlers normalize section soup into the flat model: rows are
// reordered so the first thead's rows come first, heading row/column counts
// are computed (colspan-aware) and attached to the table node, empty tables
// gain a minimal row and cell, and empty cells gain a paragraph placeholder.
package upcast
