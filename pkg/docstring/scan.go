package docstring

import (
	"regexp"
	"strings"
)

// itemKeyRe matches an item key at the start of a line: a word, optionally
// prefixed by stars for variadic parameters (*args, **kwargs).
var itemKeyRe = regexp.MustCompile(`^\**\w+`)

// parseDocument is the dialect-independent scanning loop. It walks the
// cleaned docstring line by line, letting the dialect recognize section
// headers, and collects everything between two headers as the body of the
// first. Text before the first header becomes the Summary section.
func parseDocument(d Dialect, text string) *Document {
	doc := &Document{}
	cleaned := cleandoc(text)
	if cleaned == "" {
		return doc
	}

	lines := strings.Split(cleaned, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	cur := SummarySection
	var curBody []string
	finish := func() {
		body := d.normalizeBody(strings.Join(trimTrailingBlank(curBody), "\n"))
		if cur == SummarySection && body == "" {
			// No leading text, the docstring starts with a header.
			return
		}
		sec := Section{Name: cur, Kind: kindOf(d, cur)}
		if sec.Kind == KindPlain {
			sec.Body = body
		} else {
			sec.Items = parseItems(body)
		}
		doc.add(sec)
	}

	i := 0
	for i < len(lines) {
		if name, bodyStart, ok := d.matchHeader(lines, i); ok {
			finish()
			cur = name
			curBody = nil
			i = bodyStart
			continue
		}
		curBody = append(curBody, lines[i])
		i++
	}
	finish()

	return doc
}

// parseItems splits a section body into keyed items. A line starting with a
// key begins a new item; deeper or blank lines continue the previous one.
// The item text keeps the raw remainder of the block so rendering is exact.
// Text before the first key is dropped, later duplicates of a key overwrite
// the earlier text but keep its position.
func parseItems(body string) []Item {
	if body == "" {
		return nil
	}

	type block struct {
		key   string
		lines []string
	}
	var blocks []block
	for _, line := range strings.Split(body, "\n") {
		if key := itemKeyRe.FindString(line); key != "" {
			blocks = append(blocks, block{key: key, lines: []string{line[len(key):]}})
			continue
		}
		if len(blocks) > 0 {
			blocks[len(blocks)-1].lines = append(blocks[len(blocks)-1].lines, line)
		}
	}

	var items []Item
	for _, b := range blocks {
		text := strings.Join(b.lines, "\n")
		replaced := false
		for i := range items {
			if items[i].Key == b.key {
				items[i].Text = text
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, Item{Key: b.key, Text: text})
		}
	}
	return items
}

// renderDocument joins the rendered sections with blank lines. A document
// without a summary gets a leading newline so documentation builders keep
// treating the first line as an (empty) summary.
func renderDocument(d Dialect, doc *Document) string {
	if doc.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, len(doc.Sections))
	hasSummary := false
	for _, s := range doc.Sections {
		if s.Name == SummarySection {
			hasSummary = true
		}
		parts = append(parts, d.renderSection(s))
	}

	out := strings.Join(parts, "\n\n")
	if !hasSummary {
		out = "\n" + out
	}
	return out
}

// sectionContent returns the body of a section as text, items rendered one
// per key with their raw text appended.
func sectionContent(s Section) string {
	if s.Kind == KindPlain {
		return s.Body
	}
	parts := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		parts = append(parts, it.Key+it.Text)
	}
	return strings.Join(parts, "\n")
}

// cleandoc normalizes a docstring the way Python's inspect.cleandoc does:
// tabs expanded, the first line stripped of leading spaces, the common
// indentation of the remaining lines removed, and leading and trailing blank
// lines dropped.
func cleandoc(text string) string {
	lines := strings.Split(expandTabs(text), "\n")

	margin := -1
	for _, line := range lines[1:] {
		content := strings.TrimLeft(line, " ")
		if content == "" {
			continue
		}
		indent := len(line) - len(content)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeft(lines[0], " ")
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) > margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

// expandTabs replaces tabs with spaces up to the next multiple of 8 columns,
// resetting the column at each newline.
func expandTabs(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	var b strings.Builder
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			n := 8 - col%8
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// trimTrailingBlank drops trailing empty lines.
func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}

// dedent removes the longest common leading space run of the non-blank lines.
func dedent(body string) string {
	lines := strings.Split(body, "\n")
	margin := -1
	for _, line := range lines {
		content := strings.TrimLeft(line, " ")
		if content == "" {
			continue
		}
		indent := len(line) - len(content)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return body
	}
	for i, line := range lines {
		if len(line) > margin {
			lines[i] = line[margin:]
		} else {
			lines[i] = strings.TrimLeft(line, " ")
		}
	}
	return strings.Join(lines, "\n")
}

// indent prefixes every line holding content, leaving blank lines bare.
func indent(body, prefix string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
