package docstring

import "strings"

// googleDialect implements the Google convention: "Name:" headers at column
// 0 with the section body indented underneath.
type googleDialect struct{}

func (googleDialect) Name() string { return "google" }

func (googleDialect) ArgsSection() string { return "Args" }

func (d googleDialect) Parse(text string) *Document { return parseDocument(d, text) }

func (d googleDialect) Render(doc *Document) string { return renderDocument(d, doc) }

// matchHeader recognizes a line at column 0 ending with a colon whose next
// line is indented by at least two spaces. A header from the canonical table
// is also accepted with a blank body (or at the end of the docstring), so an
// explicitly emptied section survives parsing; arbitrary names need an
// indented body line to avoid hijacking prose that happens to end with a
// colon.
func (d googleDialect) matchHeader(lines []string, i int) (string, int, bool) {
	line := lines[i]
	if line == "" || strings.HasPrefix(line, " ") || !strings.HasSuffix(line, ":") {
		return "", 0, false
	}
	name := strings.TrimRight(line, " :")
	if name == "" {
		return "", 0, false
	}
	if i+1 < len(lines) {
		switch {
		case strings.HasPrefix(lines[i+1], "  "):
			return name, i + 1, true
		case lines[i+1] == "" && d.recognized(name):
			return name, i + 1, true
		}
		return "", 0, false
	}
	if d.recognized(name) {
		return name, i + 1, true
	}
	return "", 0, false
}

func (d googleDialect) recognized(name string) bool {
	for _, known := range sectionOrder(d) {
		if name == known {
			return true
		}
	}
	return false
}

// Google bodies are indented under the header; strip the block indentation
// so item keys sit at column 0 like in the NumPy model.
func (googleDialect) normalizeBody(body string) string { return dedent(body) }

func (googleDialect) renderSection(s Section) string {
	body := sectionContent(s)
	if s.Name == SummarySection {
		return body
	}
	return s.Name + ":\n" + indent(body, "    ")
}

func (googleDialect) missingItemText() string {
	return ": " + MissingDescription
}
