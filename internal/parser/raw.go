package parser

import (
	"io"

	"github.com/dgallion1/docdiff/internal/document"
)

// RawParser keeps the input verbatim as a single section. It is used for
// source files and anything without a structure-aware parser.
type RawParser struct{}

func (p *RawParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := &document.Document{Title: titleFromFilename(filename)}
	if len(data) > 0 {
		doc.Sections = []*document.Section{{Text: string(data)}}
	}
	return doc, nil
}
