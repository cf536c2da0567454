// Package listpatch repairs gaps in the implied numbering of nested
// enumerated lists. Documents that jump straight from "1" to "2.1.2.1.2"
// (intervening clauses deleted, merged, or never rendered separately) get
// placeholder lines inserted so every nesting level is explicitly present
// before tree assembly.
package listpatch

import (
	"strconv"
	"strings"
)

// NumericPath is the ordered multi-level enumeration value parsed from a
// line's leading characters, e.g. [2 1 2] for "2.1.2". Every component is
// at least 1 and paths are never empty.
type NumericPath []int

// String renders the path the way a skipped list entry would be written:
// components dot-joined with a trailing dot, e.g. "2.1.1.".
func (p NumericPath) String() string {
	var sb strings.Builder
	for _, n := range p {
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte('.')
	}
	return sb.String()
}

// child returns a copy of p extended with one more component.
func (p NumericPath) child(v int) NumericPath {
	out := make(NumericPath, len(p)+1)
	copy(out, p)
	out[len(p)] = v
	return out
}

// ParsePath extracts the leading enumeration marker from text. The marker
// is the maximal prefix of digits and dots starting at the first character;
// a trailing dot is tolerated ("2. item" parses as [2]). Returns false when
// the text does not begin with a digit or any component is not a positive
// integer.
func ParsePath(text string) (NumericPath, bool) {
	if text == "" || text[0] < '0' || text[0] > '9' {
		return nil, false
	}
	end := 0
	for end < len(text) && (text[end] == '.' || (text[end] >= '0' && text[end] <= '9')) {
		end++
	}
	parts := strings.Split(text[:end], ".")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	path := make(NumericPath, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, false
		}
		path = append(path, n)
	}
	if len(path) == 0 {
		return nil, false
	}
	return path, true
}
