// Package structure assembles the patched line sequence into the final
// nested document tree.
package structure

import (
	"github.com/docrelay/docstruct/internal/doctree"
	"github.com/docrelay/docstruct/internal/listpatch"
)

// Assemble builds a Document from an ordered, already-patched line
// sequence. Headers nest by heading level and list items by numbering
// depth, using a stack of open sections; raw text attaches to the current
// section. Synthetic lines become placeholder nodes so consumers can
// render or suppress them.
func Assemble(title string, lines []doctree.Line) *doctree.Document {
	doc := &doctree.Document{Title: title}
	root := &doctree.Node{}

	type stackEntry struct {
		node  *doctree.Node
		depth int
	}
	stack := []stackEntry{{node: root, depth: 0}}

	for _, line := range lines {
		node := &doctree.Node{
			Text:      line.Text,
			Category:  line.Category,
			Synthetic: line.Synthetic,
			Page:      line.Page,
		}

		depth := lineDepth(line)
		if depth == 0 {
			// Body text attaches to the innermost open section.
			top := stack[len(stack)-1].node
			top.Children = append(top.Children, node)
			continue
		}

		// Pop until we find a parent shallower than this line.
		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, stackEntry{node: node, depth: depth})
	}

	doc.Children = root.Children
	return doc
}

// lineDepth is the nesting depth a line opens: heading level for headers,
// numbering depth for list items, 0 for body text.
func lineDepth(line doctree.Line) int {
	switch line.Category {
	case doctree.CategoryHeader:
		return line.Level.Minor
	case doctree.CategoryListItem:
		if path, ok := listpatch.ParsePath(line.Text); ok {
			return len(path)
		}
		if line.Level.Minor > 0 {
			return line.Level.Minor
		}
		return 1
	}
	return 0
}
