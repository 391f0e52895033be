package docstring

import "fmt"

// Dialect is the strategy for one docstring convention. It bundles the
// format-specific pieces (header syntax, body normalization, item layout)
// while the merge engine stays dialect-agnostic and works on the Document
// model only.
type Dialect interface {
	// Name returns the dialect identifier ("numpy" or "google").
	Name() string
	// ArgsSection returns the name of the signature-bound section.
	ArgsSection() string
	// Parse converts raw docstring text into a Document. It is total over
	// strings: malformed input degrades into plain sections, it never fails.
	Parse(text string) *Document
	// Render serializes a Document back into the dialect's text layout.
	Render(doc *Document) string

	// matchHeader reports whether a section header starts at lines[i],
	// returning the section name and the index of the first body line.
	matchHeader(lines []string, i int) (name string, bodyStart int, ok bool)
	// normalizeBody adjusts a raw section body after scanning (the Google
	// dialect strips the block indentation, NumPy keeps bodies as-is).
	normalizeBody(body string) string
	// renderSection emits one section including its header syntax.
	renderSection(s Section) string
	// missingItemText returns the dialect-formatted placeholder for an
	// undocumented signature parameter.
	missingItemText() string
}

// Dialects implemented by this package.
var (
	Numpy  Dialect = numpyDialect{}
	Google Dialect = googleDialect{}
)

// DialectByName resolves a dialect identifier.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case "numpy":
		return Numpy, nil
	case "google":
		return Google, nil
	default:
		return nil, fmt.Errorf("unknown docstring dialect %q", name)
	}
}
