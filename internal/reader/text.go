package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/docrelay/docstruct/internal/doctree"
)

// TextReader handles plain text files. Every non-blank source line becomes
// one unclassified line; the classifier refines categories afterwards.
type TextReader struct{}

func (p *TextReader) Read(r io.Reader, filename string) (*doctree.ParsedFile, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	pf := &doctree.ParsedFile{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		pf.Lines = append(pf.Lines, doctree.Line{
			Text:     text,
			Category: doctree.CategoryRawText,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pf, nil
}
