package reader

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/docrelay/docstruct/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXReader handles .docx files. Paragraphs with HeadingN styles become
// header lines; everything else is raw text refined by the classifier.
type DOCXReader struct{}

func (p *DOCXReader) Read(r io.Reader, filename string) (*doctree.ParsedFile, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docstruct-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	pf := &doctree.ParsedFile{
		Title: strings.TrimSuffix(filename, ".docx"),
	}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if level := paragraphHeadingLevel(para); level > 0 {
			pf.Lines = append(pf.Lines, doctree.Line{
				Text:     text,
				Level:    doctree.HeaderLevel(level),
				Category: doctree.CategoryHeader,
			})
		} else {
			pf.Lines = append(pf.Lines, doctree.Line{
				Text:     text,
				Category: doctree.CategoryRawText,
			})
		}
	}

	return pf, nil
}

// paragraphHeadingLevel maps "Heading1".."Heading6" (and "heading 1" style
// names) to their level, 0 for non-headings.
func paragraphHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ReplaceAll(strings.ToLower(para.Properties.Style.Val), " ", "")
	rest, ok := strings.CutPrefix(style, "heading")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 6 {
		return 0
	}
	return n
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
