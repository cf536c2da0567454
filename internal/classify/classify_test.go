package classify

import (
	"reflect"
	"testing"

	"github.com/docrelay/docstruct/internal/doctree"
)

func TestHeuristic_NumberedLinesBecomeListItems(t *testing.T) {
	lines := []doctree.Line{
		{Text: "2.1.2 Payment terms", Category: doctree.CategoryRawText},
		{Text: "plain prose", Category: doctree.CategoryRawText},
		{Text: "- bullet point", Category: doctree.CategoryRawText},
	}
	got := Heuristic{}.Classify(lines)

	if got[0].Category != doctree.CategoryListItem {
		t.Errorf("numbered line: expected %q, got %q", doctree.CategoryListItem, got[0].Category)
	}
	if got[0].Level.Minor != 3 {
		t.Errorf("numbered line: expected depth 3, got %d", got[0].Level.Minor)
	}
	if got[1].Category != doctree.CategoryRawText {
		t.Errorf("prose line: expected %q, got %q", doctree.CategoryRawText, got[1].Category)
	}
	if got[2].Category != doctree.CategoryListItem {
		t.Errorf("bullet line: expected %q, got %q", doctree.CategoryListItem, got[2].Category)
	}
	if got[2].Level.Minor != 1 {
		t.Errorf("bullet line: expected depth 1, got %d", got[2].Level.Minor)
	}
}

func TestHeuristic_ReaderCategoriesUntouched(t *testing.T) {
	lines := []doctree.Line{
		{Text: "1 Introduction", Level: doctree.HeaderLevel(1), Category: doctree.CategoryHeader},
	}
	got := Heuristic{}.Classify(lines)
	if got[0].Category != doctree.CategoryHeader {
		t.Errorf("expected header to stay %q, got %q", doctree.CategoryHeader, got[0].Category)
	}
}

func TestHeuristic_InputNotMutated(t *testing.T) {
	lines := []doctree.Line{
		{Text: "1 item", Category: doctree.CategoryRawText},
	}
	snapshot := make([]doctree.Line, len(lines))
	copy(snapshot, lines)

	Heuristic{}.Classify(lines)

	if !reflect.DeepEqual(lines, snapshot) {
		t.Error("expected input slice to be unchanged after Classify")
	}
}
