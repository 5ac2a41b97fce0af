package upcast

import (
	"golang.org/x/net/html"

	"github.com/AraneaDev/ckeditor5-table/model"
)

// convertCell converts a view <th> or <td> into a model tableCell. Both
// produce the same generic cell: heading semantics live only in the
// table-level counts, never on individual cells. A cell that ends up with no
// content receives a single empty paragraph, because the model forbids
// contentless cells. The placeholder is gated on zero children, so running
// the conversion over an already-filled cell can never add a second one.
func convertCell(ctx *Context, viewCell *html.Node, cursor model.Position) (Result, bool) {
	if !ctx.Consumable(viewCell) {
		return Result{}, false
	}
	placement, ok := ctx.SplitToAllowedParent(model.TableCell, cursor)
	if !ok {
		ctx.Log.Debug("no allowed parent for table cell; skipping subtree")
		return skipResult(cursor), true
	}

	cell := ctx.Writer.CreateElement(model.TableCell, nil)
	if err := ctx.Writer.Insert(cell, placement.Position); err != nil {
		return Result{}, false
	}
	ctx.Consume(viewCell)

	ctx.ConvertChildren(viewCell, model.PositionAt(cell, 0))
	if cell.ChildCount() == 0 {
		ctx.Writer.Insert(ctx.Writer.CreateElement(model.Paragraph, nil), model.PositionAt(cell, 0))
	}

	return elementResult(cell, placement), true
}
