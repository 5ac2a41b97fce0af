package model

import "testing"

func TestNewElement_Attributes(t *testing.T) {
	n := NewElement(Table, map[string]any{AttrHeadingRows: 2})

	if n.Type() != ElementNode {
		t.Errorf("Type() = %v, want ElementNode", n.Type())
	}
	if n.Name() != Table {
		t.Errorf("Name() = %q, want %q", n.Name(), Table)
	}
	if got := n.IntAttribute(AttrHeadingRows); got != 2 {
		t.Errorf("IntAttribute(headingRows) = %d, want 2", got)
	}
	if n.HasAttribute(AttrHeadingColumns) {
		t.Error("headingColumns should be absent")
	}
	if n.AttributeCount() != 1 {
		t.Errorf("AttributeCount() = %d, want 1", n.AttributeCount())
	}
}

func TestNewElement_NilAttrs(t *testing.T) {
	n := NewElement(Paragraph, nil)
	if n.AttributeCount() != 0 {
		t.Errorf("AttributeCount() = %d, want 0", n.AttributeCount())
	}
}

func TestNewText(t *testing.T) {
	n := NewText("hello")
	if n.Type() != TextNode {
		t.Errorf("Type() = %v, want TextNode", n.Type())
	}
	if n.Name() != Text {
		t.Errorf("Name() = %q, want %q", n.Name(), Text)
	}
	if n.Data() != "hello" {
		t.Errorf("Data() = %q, want 'hello'", n.Data())
	}
}

func TestNode_ChildNavigation(t *testing.T) {
	w := NewWriter()
	root := NewElement(Root, nil)
	first := w.CreateElement(Paragraph, nil)
	second := w.CreateElement(Table, nil)
	if err := w.Append(first, root); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if err := w.Append(second, root); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	if root.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", root.ChildCount())
	}
	if root.Child(0) != first || root.Child(1) != second {
		t.Error("children out of order")
	}
	if root.Child(2) != nil {
		t.Error("Child(2) should be nil")
	}
	if first.Index() != 0 || second.Index() != 1 {
		t.Errorf("Index() = %d, %d, want 0, 1", first.Index(), second.Index())
	}
	if first.Parent() != root {
		t.Error("Parent() should be root")
	}
	if second.Root() != root {
		t.Error("Root() should be root")
	}
	if root.Index() != -1 {
		t.Errorf("root Index() = %d, want -1", root.Index())
	}
}

func TestNode_InnerText(t *testing.T) {
	w := NewWriter()
	para := NewElement(Paragraph, nil)
	w.Append(NewText("foo"), para)
	w.Append(NewText("bar"), para)

	if got := para.InnerText(); got != "foobar" {
		t.Errorf("InnerText() = %q, want 'foobar'", got)
	}
}

func TestPosition_Neighbors(t *testing.T) {
	w := NewWriter()
	root := NewElement(Root, nil)
	para := w.CreateElement(Paragraph, nil)
	w.Append(para, root)

	before := PositionBefore(para)
	if before.Offset != 0 {
		t.Errorf("PositionBefore offset = %d, want 0", before.Offset)
	}
	if before.NodeAfter() != para {
		t.Error("NodeAfter() should be para")
	}
	if before.NodeBefore() != nil {
		t.Error("NodeBefore() should be nil at the start")
	}

	after := PositionAfter(para)
	if after.Offset != 1 {
		t.Errorf("PositionAfter offset = %d, want 1", after.Offset)
	}
	if after.NodeBefore() != para {
		t.Error("NodeBefore() should be para")
	}
}

func TestPositionAt_End(t *testing.T) {
	w := NewWriter()
	root := NewElement(Root, nil)
	w.Append(w.CreateElement(Paragraph, nil), root)
	w.Append(w.CreateElement(Paragraph, nil), root)

	end := PositionAt(root, -1)
	if end.Offset != 2 {
		t.Errorf("PositionAt(root, -1) offset = %d, want 2", end.Offset)
	}
}

func TestRangeOn(t *testing.T) {
	w := NewWriter()
	root := NewElement(Root, nil)
	para := w.CreateElement(Paragraph, nil)
	w.Append(para, root)

	r := RangeOn(para)
	if r.Start.Offset != 0 || r.End.Offset != 1 {
		t.Errorf("RangeOn offsets = %d..%d, want 0..1", r.Start.Offset, r.End.Offset)
	}
	if r.Empty() {
		t.Error("range over a node should not be empty")
	}

	p := PositionAt(root, 0)
	if !(Range{Start: p, End: p}).Empty() {
		t.Error("collapsed range should be empty")
	}
}
