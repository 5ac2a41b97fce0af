package upcast

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/AraneaDev/ckeditor5-table/model"
)

// Handler converts a single view item at the given model cursor. It reports
// false when the item is not applicable to it (wrong shape, or already
// consumed by an earlier converter), in which case the dispatcher tries the
// next handler; a false return must leave the model tree untouched. A handler
// that claims the item but deliberately drops its subtree (for example when
// the schema admits it nowhere) reports true with a collapsed range at the
// unchanged cursor, which stops the dispatcher from descending into the
// item's children.
type Handler func(ctx *Context, viewItem *html.Node, cursor model.Position) (Result, bool)

// Result describes what one conversion call produced: the model range
// spanning everything inserted, and the cursor where the next sibling should
// be converted. After an ancestor split the cursor points inside the split
// remainder rather than after the produced range.
type Result struct {
	Range  model.Range
	Cursor model.Position
}

// Dispatcher is an ordered table of conversion handlers keyed by view element
// name. Registration order is priority order: the first handler to report
// handled wins. A dispatcher is immutable once registration is done and may
// be shared between conversion passes; all per-pass state lives in a
// [Context].
type Dispatcher struct {
	handlers map[string][]Handler
	text     []Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// On registers a handler for view elements with the given tag name. Handlers
// registered earlier take priority.
func (d *Dispatcher) On(name string, h Handler) {
	d.handlers[name] = append(d.handlers[name], h)
}

// OnText registers a handler for view text nodes.
func (d *Dispatcher) OnText(h Handler) {
	d.text = append(d.text, h)
}

// Convert runs one conversion pass: every child of viewRoot is converted into
// a fresh $root fragment using a new context. A nil schema or logger selects
// the defaults.
func (d *Dispatcher) Convert(viewRoot *html.Node, schema *model.Schema, log *zap.Logger) *model.Node {
	ctx := NewContext(d, schema, log)
	root := model.NewElement(model.Root, nil)
	ctx.ConvertChildren(viewRoot, model.PositionAt(root, 0))
	return root
}

// Context carries the per-pass conversion state: the destination writer and
// schema, the consumption ledger, and the re-entry points handlers use to
// delegate conversion of nested content. One context serves exactly one
// single-threaded pass over one view tree.
type Context struct {
	Writer *model.Writer
	Schema *model.Schema
	Log    *zap.Logger

	dispatcher *Dispatcher
	consumed   map[*html.Node]bool
}

// NewContext creates the state for one conversion pass. A nil schema or
// logger selects [model.DefaultSchema] and a nop logger.
func NewContext(d *Dispatcher, schema *model.Schema, log *zap.Logger) *Context {
	if schema == nil {
		schema = model.DefaultSchema()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Writer:     model.NewWriter(),
		Schema:     schema,
		Log:        log,
		dispatcher: d,
		consumed:   make(map[*html.Node]bool),
	}
}

// Consumable reports whether the view node is still available for conversion.
func (c *Context) Consumable(n *html.Node) bool {
	return !c.consumed[n]
}

// Consume claims the view node for the rest of the pass. It reports false if
// the node was already consumed.
func (c *Context) Consume(n *html.Node) bool {
	if c.consumed[n] {
		return false
	}
	c.consumed[n] = true
	return true
}

// ConvertItem converts a single view node at the cursor. Elements are offered
// to their registered handlers in priority order; an element no handler
// claims is not materialized, but its children are converted in its place so
// nested content still reaches the model. Text nodes go to the text handlers.
// The second return is false when nothing was produced.
func (c *Context) ConvertItem(viewItem *html.Node, cursor model.Position) (Result, bool) {
	switch viewItem.Type {
	case html.TextNode:
		for _, h := range c.dispatcher.text {
			if res, ok := h(c, viewItem, cursor); ok {
				return res, true
			}
		}
		return Result{}, false

	case html.ElementNode:
		for _, h := range c.dispatcher.handlers[viewItem.Data] {
			if res, ok := h(c, viewItem, cursor); ok {
				return res, true
			}
		}
		if !c.Consumable(viewItem) {
			return Result{}, false
		}
		return c.ConvertChildren(viewItem, cursor), true

	default:
		// Comments, doctypes and document wrappers produce nothing.
		return Result{}, false
	}
}

// ConvertChildren converts all children of viewItem in document order,
// threading the cursor through each result. The returned range runs from the
// starting cursor to the final one.
func (c *Context) ConvertChildren(viewItem *html.Node, cursor model.Position) Result {
	result := Result{
		Range:  model.Range{Start: cursor, End: cursor},
		Cursor: cursor,
	}
	for child := viewItem.FirstChild; child != nil; child = child.NextSibling {
		if res, ok := c.ConvertItem(child, result.Cursor); ok {
			result.Cursor = res.Cursor
		}
	}
	result.Range.End = result.Cursor
	return result
}
