package docstring

import "strings"

// numpyDialect implements the NumPy convention: section names underlined
// with dashes, item blocks at column 0 under the header.
type numpyDialect struct{}

func (numpyDialect) Name() string { return "numpy" }

func (numpyDialect) ArgsSection() string { return "Parameters" }

func (d numpyDialect) Parse(text string) *Document { return parseDocument(d, text) }

func (d numpyDialect) Render(doc *Document) string { return renderDocument(d, doc) }

// matchHeader recognizes a title line underlined by at least three dashes or
// equal signs spanning at least the title length. Any title is accepted,
// which is how "other" sections enter the model.
func (numpyDialect) matchHeader(lines []string, i int) (string, int, bool) {
	if i+1 >= len(lines) {
		return "", 0, false
	}
	underline := lines[i+1]
	if len(underline) < 3 || !uniformRun(underline) {
		return "", 0, false
	}
	title := lines[i]
	if title == "" || strings.HasPrefix(title, " ") || len(underline) < len(title) {
		return "", 0, false
	}
	return title, i + 2, true
}

// NumPy bodies already sit at column 0.
func (numpyDialect) normalizeBody(body string) string { return body }

func (numpyDialect) renderSection(s Section) string {
	body := sectionContent(s)
	if s.Name == SummarySection {
		return body
	}
	return s.Name + "\n" + strings.Repeat("-", len(s.Name)) + "\n" + body
}

func (numpyDialect) missingItemText() string {
	return "\n    " + MissingDescription
}

// uniformRun reports whether the line is made of a single underline rune.
func uniformRun(line string) bool {
	c := line[0]
	if c != '-' && c != '=' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}
