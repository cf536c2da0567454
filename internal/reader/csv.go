package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/docrelay/docstruct/internal/doctree"
)

// CSVReader handles CSV files. Each data row becomes one raw text line of
// "header: value" pairs.
type CSVReader struct{}

func (p *CSVReader) Read(r io.Reader, filename string) (*doctree.ParsedFile, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	pf := &doctree.ParsedFile{
		Title: strings.TrimSuffix(filename, ".csv"),
	}

	if len(records) == 0 {
		return pf, nil
	}

	// First row is headers.
	headers := records[0]
	for _, row := range records[1:] {
		var sb strings.Builder
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			if j < len(headers) {
				sb.WriteString(headers[j] + ": " + cell)
			} else {
				sb.WriteString(cell)
			}
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}
		pf.Lines = append(pf.Lines, doctree.Line{
			Text:     text,
			Category: doctree.CategoryRawText,
		})
	}

	return pf, nil
}
