package upcast

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/AraneaDev/ckeditor5-table/model"
	"github.com/AraneaDev/ckeditor5-table/view"
)

// RegisterDefaults registers the built-in conversion: tables with their rows
// and cells, paragraphs, and text. Callers that want to override any of these
// must register their own handlers before calling this.
func RegisterDefaults(d *Dispatcher) {
	d.On("table", convertTable)
	d.On("tr", convertTableRow)
	d.On("th", convertCell)
	d.On("td", convertCell)
	d.On("p", convertParagraph)
	d.OnText(convertText)
}

// convertParagraph turns a view <p> into a model paragraph.
func convertParagraph(ctx *Context, viewItem *html.Node, cursor model.Position) (Result, bool) {
	return convertElement(ctx, viewItem, model.Paragraph, nil, cursor)
}

// convertElement is the shared element conversion pattern: consumption guard,
// split-capable insertion, child conversion, range and cursor computation.
func convertElement(ctx *Context, viewItem *html.Node, name string, attrs map[string]any, cursor model.Position) (Result, bool) {
	if !ctx.Consumable(viewItem) {
		return Result{}, false
	}
	placement, ok := ctx.SplitToAllowedParent(name, cursor)
	if !ok {
		ctx.Log.Debug("no allowed parent for element; skipping subtree",
			zap.String("view", view.Name(viewItem)),
			zap.String("model", name))
		return skipResult(cursor), true
	}
	elem := ctx.Writer.CreateElement(name, attrs)
	if err := ctx.Writer.Insert(elem, placement.Position); err != nil {
		return Result{}, false
	}
	ctx.Consume(viewItem)
	ctx.ConvertChildren(viewItem, model.PositionAt(elem, 0))
	return elementResult(elem, placement), true
}

// skipResult reports a handled-but-empty conversion: the subtree was
// deliberately dropped and the cursor stays put.
func skipResult(cursor model.Position) Result {
	return Result{Range: model.Range{Start: cursor, End: cursor}, Cursor: cursor}
}

// elementResult computes the produced range and next cursor once descendant
// conversion is done. The range is taken from the element's final location:
// descendant conversions may have split ancestors, so "after this node" is
// not necessarily a sibling of the original insertion point.
func elementResult(elem *model.Node, placement Placement) Result {
	res := Result{Range: model.RangeOn(elem)}
	if placement.HasContinuation() {
		res.Cursor = placement.Continuation
	} else {
		res.Cursor = res.Range.End
	}
	return res
}

// convertText turns a view text node into model text. Whitespace-only text
// (markup indentation) produces nothing. When the cursor parent does not
// admit text but admits a paragraph, the text is wrapped in a fresh
// paragraph, which is how bare text directly inside a table cell becomes
// block content.
func convertText(ctx *Context, viewText *html.Node, cursor model.Position) (Result, bool) {
	data := strings.Join(strings.Fields(viewText.Data), " ")
	if data == "" {
		return Result{}, false
	}

	if ctx.Schema.CheckChild(cursor.Parent.Name(), model.Text) {
		text := ctx.Writer.CreateText(data)
		if err := ctx.Writer.Insert(text, cursor); err != nil {
			return Result{}, false
		}
		return Result{Range: model.RangeOn(text), Cursor: model.PositionAfter(text)}, true
	}

	if ctx.Schema.CheckChild(cursor.Parent.Name(), model.Paragraph) {
		para := ctx.Writer.CreateElement(model.Paragraph, nil)
		if err := ctx.Writer.Insert(para, cursor); err != nil {
			return Result{}, false
		}
		if err := ctx.Writer.Insert(ctx.Writer.CreateText(data), model.PositionAt(para, 0)); err != nil {
			return Result{}, false
		}
		return Result{Range: model.RangeOn(para), Cursor: model.PositionAfter(para)}, true
	}

	ctx.Log.Debug("text does not fit here; skipping", zap.String("parent", cursor.Parent.Name()))
	return Result{}, false
}
