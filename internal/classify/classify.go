// Package classify assigns line types ahead of list patching and tree
// assembly. The trained line classifier lives outside this service; this
// package defines the interface it plugs into and a rule-based default so
// the pipeline works without it.
package classify

import (
	"regexp"

	"github.com/docrelay/docstruct/internal/doctree"
	"github.com/docrelay/docstruct/internal/listpatch"
)

// Classifier refines the categories and outline levels of reader output.
// Implementations must not mutate the input slice.
type Classifier interface {
	Classify(lines []doctree.Line) []doctree.Line
}

var bulletPattern = regexp.MustCompile(`^[-*•]\s+`)

// Heuristic is the default rule-based classifier. It tags lines with a
// leading enumeration marker or bullet as list items and leaves
// reader-assigned categories (headers, list items from markup) alone.
type Heuristic struct{}

func (Heuristic) Classify(lines []doctree.Line) []doctree.Line {
	out := make([]doctree.Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].Category != doctree.CategoryRawText {
			continue
		}
		if path, ok := listpatch.ParsePath(out[i].Text); ok {
			out[i].Category = doctree.CategoryListItem
			out[i].Level = doctree.ListLevel(len(path))
		} else if bulletPattern.MatchString(out[i].Text) {
			out[i].Category = doctree.CategoryListItem
			out[i].Level = doctree.ListLevel(1)
		}
	}
	return out
}
