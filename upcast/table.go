package upcast

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/AraneaDev/ckeditor5-table/model"
	"github.com/AraneaDev/ckeditor5-table/view"
)

// tableMeta is the scanner's summary of one view table: the heading counts
// and the canonical row order.
type tableMeta struct {
	headingRows    int
	headingColumns int
	rows           []*html.Node
}

// scanTable classifies the rows of a view table. Rows live only inside
// thead/tbody/tfoot children; anything else (captions, colgroups, stray
// text) is ignored. The first thead encountered is the canonical header
// section: its rows are the heading rows. Every other row, including rows of
// a second thead, is a body row. Body rows are additionally scanned for a
// leading run of th cells, whose colspan sum contributes to the table's
// heading-column count; the table takes the maximum contribution.
//
// The returned row order is the heading rows followed by the body rows, each
// group in original document order, regardless of how the sections were
// interleaved in the source.
func scanTable(viewTable *html.Node) tableMeta {
	var meta tableMeta
	var headingRows, bodyRows []*html.Node
	var firstThead *html.Node

	for section := viewTable.FirstChild; section != nil; section = section.NextSibling {
		switch view.Name(section) {
		case "thead":
			if firstThead == nil {
				firstThead = section
			}
		case "tbody", "tfoot":
		default:
			continue
		}

		for row := section.FirstChild; row != nil; row = row.NextSibling {
			if !view.IsElement(row, "tr") {
				continue
			}
			if section == firstThead {
				headingRows = append(headingRows, row)
				continue
			}
			bodyRows = append(bodyRows, row)
			if cols := scanRowForHeadingColumns(row); cols > meta.headingColumns {
				meta.headingColumns = cols
			}
		}
	}

	meta.headingRows = len(headingRows)
	meta.rows = append(headingRows, bodyRows...)
	return meta
}

// scanRowForHeadingColumns sums the colspans of the row's contiguous leading
// th cells. The scan looks only at cell-like children (th/td) and stops at
// the first td; a row starting with a td contributes nothing.
func scanRowForHeadingColumns(viewRow *html.Node) int {
	cols := 0
	for c := viewRow.FirstChild; c != nil; c = c.NextSibling {
		if !view.IsCell(c) {
			continue
		}
		if !view.IsElement(c, "th") {
			break
		}
		cols += view.ColSpan(c)
	}
	return cols
}

// convertTable converts a view <table> into a model table carrying the
// scanned heading counts, then delegates each row back to the dispatcher in
// canonical order. A table the schema cannot place anywhere is skipped
// without any mutation. A table that ends up with no rows (empty source, or
// every row degenerate) still produces one row with one cell, because the
// model forbids empty tables.
func convertTable(ctx *Context, viewTable *html.Node, cursor model.Position) (Result, bool) {
	if !ctx.Consumable(viewTable) {
		return Result{}, false
	}

	meta := scanTable(viewTable)
	attrs := make(map[string]any)
	if meta.headingColumns > 0 {
		attrs[model.AttrHeadingColumns] = meta.headingColumns
	}
	if meta.headingRows > 0 {
		attrs[model.AttrHeadingRows] = meta.headingRows
	}

	placement, ok := ctx.SplitToAllowedParent(model.Table, cursor)
	if !ok {
		ctx.Log.Debug("no allowed parent for table; skipping subtree")
		return skipResult(cursor), true
	}

	table := ctx.Writer.CreateElement(model.Table, attrs)
	if err := ctx.Writer.Insert(table, placement.Position); err != nil {
		return Result{}, false
	}
	ctx.Consume(viewTable)
	ctx.Log.Debug("upcasting table",
		zap.Int("rows", len(meta.rows)),
		zap.Int("headingRows", meta.headingRows),
		zap.Int("headingColumns", meta.headingColumns))

	for _, row := range meta.rows {
		ctx.ConvertItem(row, model.PositionAt(table, -1))
	}
	if table.ChildCount() == 0 {
		createEmptyRow(ctx, table)
	}

	return elementResult(table, placement), true
}

// convertTableRow converts a view <tr> into a model tableRow. A row with no
// cell children is consumed but produces nothing: degenerate rows are
// dropped rather than materialized empty.
func convertTableRow(ctx *Context, viewRow *html.Node, cursor model.Position) (Result, bool) {
	if !ctx.Consumable(viewRow) {
		return Result{}, false
	}
	if !hasCells(viewRow) {
		ctx.Consume(viewRow)
		return skipResult(cursor), true
	}
	return convertElement(ctx, viewRow, model.TableRow, nil, cursor)
}

func hasCells(viewRow *html.Node) bool {
	for c := viewRow.FirstChild; c != nil; c = c.NextSibling {
		if view.IsCell(c) {
			return true
		}
	}
	return false
}

// createEmptyRow fills a freshly created table with the minimal structure
// the model requires: one row holding one cell holding one empty paragraph.
func createEmptyRow(ctx *Context, table *model.Node) {
	row := ctx.Writer.CreateElement(model.TableRow, nil)
	ctx.Writer.Insert(row, model.PositionAt(table, 0))
	cell := ctx.Writer.CreateElement(model.TableCell, nil)
	ctx.Writer.Insert(cell, model.PositionAt(row, 0))
	ctx.Writer.Insert(ctx.Writer.CreateElement(model.Paragraph, nil), model.PositionAt(cell, 0))
}
