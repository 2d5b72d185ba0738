package document

import "testing"

func TestDocument_TextFlattensDepthFirst(t *testing.T) {
	doc := &Document{
		Title: "ignored",
		Sections: []*Section{
			{Text: "Intro."},
			{
				Heading: "Chapter 1",
				Text:    "Body one.",
				Children: []*Section{
					{Heading: "Section 1.1", Text: "Nested."},
					{Heading: "Empty heading"},
				},
			},
		},
	}
	want := "Intro.\n\nChapter 1\n\nBody one.\n\nSection 1.1\n\nNested.\n\nEmpty heading"
	if got := doc.Text(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDocument_TextEmpty(t *testing.T) {
	if got := (&Document{}).Text(); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestOutline_Nesting(t *testing.T) {
	o := NewOutline()
	o.Heading(1, "A")
	o.Paragraph("a text")
	o.Heading(2, "A.1")
	o.Paragraph("first")
	o.Paragraph("second")
	o.Heading(1, "B")
	o.Heading(3, "B.deep")

	sections := o.Sections()
	if len(sections) != 2 {
		t.Fatalf("expected 2 top-level sections, got %d", len(sections))
	}
	a, b := sections[0], sections[1]
	if a.Heading != "A" || a.Text != "a text" {
		t.Errorf("unexpected section A: %+v", a)
	}
	if len(a.Children) != 1 || a.Children[0].Text != "first\n\nsecond" {
		t.Errorf("unexpected A children: %+v", a.Children)
	}
	if len(b.Children) != 1 || b.Children[0].Heading != "B.deep" {
		t.Errorf("unexpected B children: %+v", b.Children)
	}
}

func TestOutline_NoHeadings(t *testing.T) {
	o := NewOutline()
	o.Paragraph("one")
	o.Paragraph("")
	o.Paragraph("two")

	sections := o.Sections()
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Text != "one\n\ntwo" {
		t.Errorf("expected %q, got %q", "one\n\ntwo", sections[0].Text)
	}
}
