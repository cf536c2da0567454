package listpatch

import "github.com/docrelay/docstruct/internal/doctree"

// SyntheticLine renders a placeholder line for a numbering level the source
// document skipped. The line is labeled as a list item at the path's depth
// so tree assembly nests it like any other entry; Synthetic marks it for
// consumers that want to render it distinctly or drop it from extracted
// text.
func SyntheticLine(path NumericPath) doctree.Line {
	return doctree.Line{
		Text:      path.String(),
		Level:     doctree.ListLevel(len(path)),
		Category:  doctree.CategoryListItem,
		Synthetic: true,
	}
}
