package reader

import (
	"bytes"
	"io"
	"strings"

	"github.com/docrelay/docstruct/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader handles Markdown files using goldmark. Headings become
// header lines at their level, list items become list_item lines at their
// nesting depth, everything else is raw text.
type MarkdownReader struct{}

func (p *MarkdownReader) Read(r io.Reader, filename string) (*doctree.ParsedFile, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	pf := &doctree.ParsedFile{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	var walk func(n ast.Node, listDepth int)
	walk = func(n ast.Node, listDepth int) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Heading:
				if t := string(node.Text(src)); t != "" {
					pf.Lines = append(pf.Lines, doctree.Line{
						Text:     t,
						Level:    doctree.HeaderLevel(node.Level),
						Category: doctree.CategoryHeader,
					})
				}
			case *ast.List:
				walk(node, listDepth+1)
			case *ast.ListItem:
				walk(node, listDepth)
			case *ast.Paragraph:
				p.appendBlock(pf, node, src, listDepth)
			case *ast.TextBlock:
				p.appendBlock(pf, node, src, listDepth)
			default:
				p.appendBlock(pf, c, src, 0)
			}
		}
	}
	walk(doc, 0)

	return pf, nil
}

// appendBlock splits a block's text into lines and labels them according to
// the surrounding list nesting.
func (p *MarkdownReader) appendBlock(pf *doctree.ParsedFile, n ast.Node, src []byte, listDepth int) {
	category := doctree.CategoryRawText
	var level doctree.OutlineLevel
	if listDepth > 0 {
		category = doctree.CategoryListItem
		level = doctree.ListLevel(listDepth)
	}
	for _, line := range strings.Split(blockText(n, src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pf.Lines = append(pf.Lines, doctree.Line{
			Text:     line,
			Level:    level,
			Category: category,
		})
	}
}

// blockText gets the text content of a goldmark AST node. Inline children
// take precedence over the node's raw line segments so text is not counted
// twice for blocks that carry both.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.HasChildren() {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				buf.WriteString(blockText(c, src))
			}
		}
	} else if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	return strings.TrimSpace(buf.String())
}
