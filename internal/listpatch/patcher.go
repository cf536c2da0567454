package listpatch

import "github.com/docrelay/docstruct/internal/doctree"

// Patch repairs numbering gaps in an ordered line sequence, inserting
// synthetic lines immediately before each real line whose numbering implies
// skipped levels. Input lines pass through unchanged and keep their
// relative order.
//
// Every line is parsed for a leading enumeration marker regardless of its
// category. An unparseable line resets the numbering context, so the next
// parseable line is accepted without gap-filling. The function holds no
// state between calls and is safe for concurrent use on independent inputs.
func Patch(lines []doctree.Line) []doctree.Line {
	out := make([]doctree.Line, 0, len(lines))
	var baseline NumericPath
	for _, line := range lines {
		target, ok := ParsePath(line.Text)
		if !ok {
			out = append(out, line)
			baseline = nil
			continue
		}
		for _, p := range PlanTransition(baseline, target) {
			out = append(out, SyntheticLine(p))
		}
		out = append(out, line)
		baseline = target
	}
	return out
}
