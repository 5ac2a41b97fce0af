package tableconv

import (
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/AraneaDev/ckeditor5-table/model"
	"github.com/AraneaDev/ckeditor5-table/upcast"
	"golang.org/x/net/html"
)

func TestConvert_SimpleDocument(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<body>
	<p>intro</p>
	<table>
		<thead><tr><th>h</th></tr></thead>
		<tbody><tr><td>b</td></tr></tbody>
	</table>
</body>
</html>`

	fragment, err := Convert(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	if fragment.ChildCount() != 2 {
		t.Fatalf("fragment children = %d, want 2", fragment.ChildCount())
	}
	if fragment.Child(0).Name() != model.Paragraph {
		t.Errorf("first child = %q, want paragraph", fragment.Child(0).Name())
	}
	table := fragment.Child(1)
	if table.Name() != model.Table {
		t.Fatalf("second child = %q, want table", table.Name())
	}
	if table.IntAttribute(model.AttrHeadingRows) != 1 {
		t.Errorf("headingRows = %d, want 1", table.IntAttribute(model.AttrHeadingRows))
	}
	if err := model.DefaultSchema().Validate(fragment); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestConvert_MalformedHTML(t *testing.T) {
	// The HTML parser is lenient; unclosed tags still convert.
	fragment, err := Convert(strings.NewReader(`<table><tr><td>unclosed`))
	if err != nil {
		t.Fatalf("Convert() should handle malformed HTML: %v", err)
	}
	if fragment.ChildCount() != 1 || fragment.Child(0).Name() != model.Table {
		t.Fatal("malformed table should still convert")
	}
	if got := fragment.Child(0).InnerText(); got != "unclosed" {
		t.Errorf("table text = %q, want 'unclosed'", got)
	}
}

func TestConvert_InterleavedSections(t *testing.T) {
	fragment, err := Convert(strings.NewReader(`<table>
		<tbody><tr><td>2</td></tr></tbody>
		<thead><tr><td>1</td></tr></thead>
		<tbody><tr><td>3</td></tr></tbody>
	</table>`))
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	table := fragment.Child(0)
	for i, want := range []string{"1", "2", "3"} {
		if got := table.Child(i).InnerText(); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}
}

func TestConvert_EmptyTable(t *testing.T) {
	fragment, err := Convert(strings.NewReader(`<table></table>`))
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	table := fragment.Child(0)
	if table == nil || table.ChildCount() != 1 {
		t.Fatal("empty table should gain exactly one row")
	}
	if table.Child(0).Child(0).ChildCount() != 1 {
		t.Error("synthesized cell should hold a placeholder paragraph")
	}
}

func TestConvertFile(t *testing.T) {
	tmp, err := os.CreateTemp("", "tableconv-*.html")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer os.Remove(tmp.Name())
	tmp.WriteString(`<table><tbody><tr><td>x</td></tr></tbody></table>`)
	tmp.Close()

	fragment, err := ConvertFile(tmp.Name())
	if err != nil {
		t.Fatalf("ConvertFile() failed: %v", err)
	}
	if fragment.ChildCount() != 1 {
		t.Error("file conversion should produce one table")
	}
}

func TestConvertFile_NotFound(t *testing.T) {
	if _, err := ConvertFile("/nonexistent/page.html"); err == nil {
		t.Error("ConvertFile() expected error for nonexistent file")
	}
}

func TestTables_DocumentOrder(t *testing.T) {
	page := `<body>
		<table><tbody><tr><td>first</td></tr></tbody></table>
		<p>between</p>
		<table><tbody><tr><td>second</td></tr></tbody></table>
	</body>`

	fragments, err := Tables(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(fragments) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(fragments))
	}
	for i, want := range []string{"first", "second"} {
		table := fragments[i].Child(0)
		if table.Name() != model.Table || table.InnerText() != want {
			t.Errorf("fragment %d = %q %q, want table %q", i, table.Name(), table.InnerText(), want)
		}
	}
}

func TestTables_None(t *testing.T) {
	fragments, err := Tables(strings.NewReader(`<p>no tables here</p>`))
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(fragments) != 0 {
		t.Errorf("len(fragments) = %d, want 0", len(fragments))
	}
}

func TestWithSchema_DropsForbiddenContent(t *testing.T) {
	schema := model.NewSchema()
	schema.Register(model.Root, model.Paragraph)
	schema.Register(model.Paragraph, model.Text)

	fragment, err := Convert(strings.NewReader(`<body>
		<p>kept</p>
		<table><tbody><tr><td>dropped</td></tr></tbody></table>
	</body>`), WithSchema(schema))
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	if fragment.ChildCount() != 1 || fragment.Child(0).Name() != model.Paragraph {
		t.Error("a schema without tables should keep only the paragraph")
	}
}

func TestWithHandlers_Priority(t *testing.T) {
	fragment, err := Convert(strings.NewReader(`<table><tbody><tr><td>x</td></tr></tbody></table>`),
		WithHandlers(func(d *upcast.Dispatcher) {
			d.On("table", func(ctx *upcast.Context, viewItem *html.Node, cursor model.Position) (upcast.Result, bool) {
				if !ctx.Consumable(viewItem) {
					return upcast.Result{}, false
				}
				ctx.Consume(viewItem)
				para, err := ctx.Writer.InsertElement(model.Paragraph, nil, cursor)
				if err != nil {
					return upcast.Result{}, false
				}
				return upcast.Result{Range: model.RangeOn(para), Cursor: model.PositionAfter(para)}, true
			})
		}))
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	if fragment.ChildCount() != 1 || fragment.Child(0).Name() != model.Paragraph {
		t.Error("caller handlers should take priority over the built-ins")
	}
}

func TestWithLogger_EmitsDecisions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := Convert(strings.NewReader(`<table><tbody><tr><td>x</td></tr></tbody></table>`),
		WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}

	if logs.FilterMessage("upcasting table").Len() != 1 {
		t.Error("table conversion should log its structural decision")
	}
}
