package upcast

import (
	"github.com/AraneaDev/ckeditor5-table/model"
)

// Placement is a successful outcome of [Context.SplitToAllowedParent]:
// either the cursor position itself was schema-valid, or ancestors were
// split to reach one. When a split occurred, Continuation points inside the
// deepest split remainder, where conversion of following siblings should
// resume.
type Placement struct {
	Position     model.Position
	Continuation model.Position
	split        bool
}

// HasContinuation reports whether reaching the placement split an ancestor.
func (p Placement) HasContinuation() bool { return p.split }

// SplitToAllowedParent finds a schema-valid position for an element named
// name, starting from pos. If the cursor parent already admits the element
// the position is returned as-is. Otherwise every ancestor below the nearest
// admitting one is split at the cursor, and the element is to be placed
// between the halves. The second return is false when no ancestor admits the
// element; nothing is mutated in that case.
func (c *Context) SplitToAllowedParent(name string, pos model.Position) (Placement, bool) {
	if c.Schema.CheckChild(pos.Parent.Name(), name) {
		return Placement{Position: pos}, true
	}

	allowed := pos.Parent.Parent()
	for allowed != nil && !c.Schema.CheckChild(allowed.Name(), name) {
		allowed = allowed.Parent()
	}
	if allowed == nil {
		return Placement{}, false
	}

	placement := Placement{split: true}
	for pos.Parent != allowed {
		rest, err := c.Writer.Split(pos)
		if err != nil {
			return Placement{}, false
		}
		if placement.Continuation.Parent == nil {
			placement.Continuation = model.PositionAt(rest, 0)
		}
		pos = model.PositionBefore(rest)
	}
	placement.Position = pos
	return placement, true
}
