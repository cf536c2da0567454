package doctree

// Line categories assigned by readers and the line classifier.
const (
	CategoryRawText  = "raw_text"
	CategoryListItem = "list_item"
	CategoryHeader   = "header"
)

// OutlineLevel is the two-part classification depth assigned upstream.
// The gap-filling core carries it through without consulting it.
type OutlineLevel struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// Line is a single labeled line of a document, flowing from the format
// readers through classification and list patching into tree assembly.
type Line struct {
	Text      string       `json:"text"`
	Level     OutlineLevel `json:"level"`
	Category  string       `json:"category"`
	Synthetic bool         `json:"synthetic,omitempty"` // true only for lines inserted by the list patcher
	Page      int          `json:"page,omitempty"`      // source page (0 if N/A)
}

// ListLevel returns the outline level for a list item at the given nesting depth.
func ListLevel(depth int) OutlineLevel {
	return OutlineLevel{Major: 1, Minor: depth}
}

// HeaderLevel returns the outline level for a heading of the given level.
func HeaderLevel(level int) OutlineLevel {
	return OutlineLevel{Major: 0, Minor: level}
}

// ParsedFile is the flat output of a format reader: ordered labeled lines
// plus whatever title the format provides.
type ParsedFile struct {
	Title string
	Lines []Line
}

// Document is the root of an assembled document tree.
type Document struct {
	Title    string  `json:"title"`
	Children []*Node `json:"children,omitempty"`
}

// Node is a recursive section of the assembled tree.
type Node struct {
	Text      string  `json:"text"`
	Category  string  `json:"category"`
	Synthetic bool    `json:"synthetic,omitempty"`
	Page      int     `json:"page,omitempty"`
	Children  []*Node `json:"children,omitempty"`
}
