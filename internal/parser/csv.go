package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docdiff/internal/document"
)

// CSVParser handles CSV files. Every data row becomes one section of
// "header: value" pairs, so an edited cell surfaces next to its column name.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &document.Document{Title: titleFromFilename(filename, ".csv")}
	if len(records) == 0 {
		return doc, nil
	}

	headers := records[0]
	for i, row := range records[1:] {
		var text strings.Builder
		for j, cell := range row {
			if j > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": ")
			}
			text.WriteString(cell)
		}
		doc.Sections = append(doc.Sections, &document.Section{
			Heading: fmt.Sprintf("Row %d", i+2), // 1-indexed, after the header
			Text:    text.String(),
		})
	}
	return doc, nil
}
