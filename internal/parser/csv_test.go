package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_RowPerSection(t *testing.T) {
	input := "name,price\nwidget,10\ngadget, 12,extra\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "prices.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "prices" {
		t.Errorf("expected title %q, got %q", "prices", doc.Title)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
	if got := doc.Sections[0]; got.Heading != "Row 2" || got.Text != "name: widget, price: 10" {
		t.Errorf("unexpected first row: %+v", got)
	}
	if got := doc.Sections[1].Text; got != "name: gadget, price: 12, extra" {
		t.Errorf("unexpected second row: %q", got)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected 0 sections, got %d", len(doc.Sections))
	}
}
