// Package tableconv converts HTML tables into a normalized, schema-constrained
// document model.
//
// The model has no table sections: heading rows and columns survive only as
// integer counts on the table node, computed from thead membership and
// leading th runs (colspan-aware). Malformed input degrades gracefully —
// interleaved or duplicated sections are reordered deterministically, empty
// tables and cells gain minimal content, and content the schema cannot place
// is skipped rather than reported.
//
// Basic usage:
//
//	fragment, err := tableconv.Convert(strings.NewReader(page))
//	if err != nil {
//	    // handle error
//	}
//
// Per-table extraction:
//
//	tables, err := tableconv.Tables(strings.NewReader(page))
//
// The lower-level upcast, model and view packages are also available for
// callers that need custom handlers or schemas.
package tableconv

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/AraneaDev/ckeditor5-table/model"
	"github.com/AraneaDev/ckeditor5-table/upcast"
	"github.com/AraneaDev/ckeditor5-table/view"
)

// Convert parses HTML from r and runs one conversion pass over the document
// body, returning the produced $root fragment. Parse failures are errors;
// content that cannot be converted is skipped silently, so the fragment may
// be empty.
func Convert(r io.Reader, opts ...Option) (*model.Node, error) {
	o := buildOptions(opts)

	doc, err := view.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	body := view.FindElement(doc, "body")
	if body == nil {
		body = doc
	}

	return o.dispatcher().Convert(body, o.schema, o.logger), nil
}

// ConvertFile opens an HTML file and converts it.
func ConvertFile(filename string, opts ...Option) (*model.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Convert(f, opts...)
}

// Tables parses HTML from r, discovers every table in the document and
// converts each into its own $root fragment, in document order. Nested
// tables convert as part of their outer table, not separately. A table the
// schema cannot place is skipped.
func Tables(r io.Reader, opts ...Option) ([]*model.Node, error) {
	o := buildOptions(opts)

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	d := o.dispatcher()
	var fragments []*model.Node
	seen := make(map[*html.Node]bool)

	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		for _, viewTable := range sel.Nodes {
			if seen[viewTable] || hasTableAncestor(viewTable, seen) {
				continue
			}
			seen[viewTable] = true

			ctx := upcast.NewContext(d, o.schema, o.logger)
			root := model.NewElement(model.Root, nil)
			if res, ok := ctx.ConvertItem(viewTable, model.PositionAt(root, 0)); ok && !res.Range.Empty() {
				fragments = append(fragments, root)
			}
		}
	})

	return fragments, nil
}

// hasTableAncestor reports whether n sits inside a table already converted.
func hasTableAncestor(n *html.Node, seen map[*html.Node]bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if seen[p] {
			return true
		}
	}
	return false
}
