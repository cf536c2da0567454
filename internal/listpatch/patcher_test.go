package listpatch

import (
	"reflect"
	"testing"

	"github.com/docrelay/docstruct/internal/doctree"
)

func listLine(text string, depth int) doctree.Line {
	return doctree.Line{
		Text:     text,
		Level:    doctree.ListLevel(depth),
		Category: doctree.CategoryListItem,
	}
}

func rawLine(text string) doctree.Line {
	return doctree.Line{
		Text:     text,
		Category: doctree.CategoryRawText,
	}
}

func texts(lines []doctree.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestPatch_CompleteList(t *testing.T) {
	lines := []doctree.Line{
		listLine("1  item", 1),
		listLine("2  item", 1),
		listLine("2.1  item", 2),
		listLine("2.2  item", 2),
		listLine("3  item", 1),
	}
	got := Patch(lines)
	if !reflect.DeepEqual(texts(got), texts(lines)) {
		t.Errorf("expected input unchanged, got %v", texts(got))
	}
}

func TestPatch_GapInTheMiddle(t *testing.T) {
	lines := []doctree.Line{
		listLine("1 item", 1),
		listLine("2.1  item", 2),
		listLine("2.2  item", 2),
		listLine("3  item", 1),
	}
	got := texts(Patch(lines))
	want := []string{"1 item", "2.", "2.1  item", "2.2  item", "3  item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPatch_DeepGap(t *testing.T) {
	lines := []doctree.Line{
		listLine("1 item", 1),
		listLine("2.1.2.1.2  item", 2),
		listLine("2.2  item", 2),
		listLine("3  item", 1),
	}
	got := texts(Patch(lines))
	want := []string{
		"1 item", "2.", "2.1.", "2.1.1.", "2.1.2.", "2.1.2.1.", "2.1.2.1.1.",
		"2.1.2.1.2  item", "2.2  item", "3  item",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPatch_RawTextLinesParsedIdentically(t *testing.T) {
	// Upstream categories do not gate gap-filling: unclassified lines with
	// numeric prefixes participate like list items.
	lines := []doctree.Line{
		rawLine("1 item"),
		rawLine("2.1.2.1.2  item"),
		rawLine("2.2  item"),
		rawLine("3  item"),
	}
	got := texts(Patch(lines))
	want := []string{
		"1 item", "2.", "2.1.", "2.1.1.", "2.1.2.", "2.1.2.1.", "2.1.2.1.1.",
		"2.1.2.1.2  item", "2.2  item", "3  item",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPatch_TrailingDotNumber(t *testing.T) {
	lines := []doctree.Line{
		rawLine("2. item"),
		rawLine("2.1.2.1.2  item"),
		rawLine("2.2  item"),
		rawLine("3  item"),
	}
	got := texts(Patch(lines))
	want := []string{
		"2. item", "2.1.", "2.1.1.", "2.1.2.", "2.1.2.1.", "2.1.2.1.1.",
		"2.1.2.1.2  item", "2.2  item", "3  item",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPatch_UnparseableLineResetsContext(t *testing.T) {
	lines := []doctree.Line{
		rawLine("2 item"),
		rawLine("some item"),
		rawLine("2 item"),
	}
	got := texts(Patch(lines))
	want := []string{"2 item", "some item", "2 item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPatch_ShallowIncrementRestartsDeeperCounters(t *testing.T) {
	lines := []doctree.Line{
		rawLine("1 item"),
		listLine("1.1  item", 2),
		listLine("2.2  item", 2),
		listLine("3  item", 1),
	}
	got := texts(Patch(lines))
	want := []string{"1 item", "1.1  item", "2.", "2.1.", "2.2  item", "3  item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPatch_Empty(t *testing.T) {
	if got := Patch(nil); len(got) != 0 {
		t.Errorf("expected empty output for empty input, got %v", texts(got))
	}
}

func TestPatch_MissingHeadElement(t *testing.T) {
	// Sequences starting mid-list get no gap-fill for the first entry.
	lines := []doctree.Line{
		listLine("2  item", 1),
		listLine("2.1  item", 2),
		listLine("2.2  item", 2),
		listLine("3  item", 1),
	}
	got := Patch(lines)
	if !reflect.DeepEqual(texts(got), texts(lines)) {
		t.Errorf("expected input unchanged, got %v", texts(got))
	}

	lines = []doctree.Line{
		listLine("2.1  item", 2),
		listLine("2.2  item", 2),
		listLine("3  item", 1),
	}
	got = Patch(lines)
	if !reflect.DeepEqual(texts(got), texts(lines)) {
		t.Errorf("expected input unchanged, got %v", texts(got))
	}
}

func TestPatch_RegressionAcceptedAsFreshContext(t *testing.T) {
	// Policy, not derived: a number below the baseline starts over
	// instead of failing or filling backwards.
	lines := []doctree.Line{
		listLine("3  item", 1),
		listLine("2  item", 1),
		listLine("2.1  item", 2),
	}
	got := Patch(lines)
	if !reflect.DeepEqual(texts(got), texts(lines)) {
		t.Errorf("expected input unchanged, got %v", texts(got))
	}
}

func TestPatch_OriginalsPreservedInOrder(t *testing.T) {
	lines := []doctree.Line{
		rawLine("intro"),
		listLine("1 item", 1),
		listLine("3 item", 1),
		rawLine("outro"),
		listLine("2.2 item", 2),
	}
	got := Patch(lines)

	var originals []doctree.Line
	for _, l := range got {
		if !l.Synthetic {
			originals = append(originals, l)
		}
	}
	if !reflect.DeepEqual(originals, lines) {
		t.Errorf("expected non-synthetic subsequence to equal input, got %v", texts(originals))
	}
}

func TestPatch_SyntheticFormat(t *testing.T) {
	lines := []doctree.Line{
		listLine("1 item", 1),
		listLine("2.1.2 item", 2),
	}
	got := Patch(lines)
	for _, l := range got {
		if !l.Synthetic {
			continue
		}
		path, ok := ParsePath(l.Text)
		if !ok {
			t.Errorf("synthetic line %q: expected a parseable path", l.Text)
			continue
		}
		if l.Text != path.String() {
			t.Errorf("synthetic line text: expected %q, got %q", path.String(), l.Text)
		}
		if l.Category != doctree.CategoryListItem {
			t.Errorf("synthetic line category: expected %q, got %q", doctree.CategoryListItem, l.Category)
		}
		if l.Level.Minor != len(path) {
			t.Errorf("synthetic line depth: expected %d, got %d", len(path), l.Level.Minor)
		}
	}
}

func TestPatch_InputNotMutated(t *testing.T) {
	lines := []doctree.Line{
		listLine("1 item", 1),
		listLine("2.2 item", 2),
	}
	snapshot := make([]doctree.Line, len(lines))
	copy(snapshot, lines)

	Patch(lines)

	if !reflect.DeepEqual(lines, snapshot) {
		t.Error("expected input slice to be unchanged after Patch")
	}
}

func TestPatch_LargeNumericJump(t *testing.T) {
	// Work is proportional to the skipped range; a jump of n yields n-1
	// synthetic lines, by contract.
	lines := []doctree.Line{
		listLine("1 item", 1),
		listLine("50 item", 1),
	}
	got := Patch(lines)
	if len(got) != 2+48 {
		t.Fatalf("expected %d lines, got %d", 2+48, len(got))
	}
	if got[1].Text != "2." || got[48].Text != "49." {
		t.Errorf("expected synthetic run from %q to %q, got %q..%q", "2.", "49.", got[1].Text, got[48].Text)
	}
}
