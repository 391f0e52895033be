// Package docstring implements parsing, merging and rendering of structured
// docstrings in the NumPy and Google section conventions.
//
// A docstring is modeled as a Document: an ordered list of named sections.
// Sections either hold a free-text body or an ordered list of keyed items
// (for example one item per documented parameter). The Merge functions
// combine a parent and a child Document according to per-kind inheritance
// rules so that a derived definition can borrow the documentation its own
// docstring leaves out.
package docstring

// Kind classifies how a section's content is structured and merged.
type Kind int

const (
	// KindPlain is free text with no sub-structure.
	KindPlain Kind = iota
	// KindItemized holds keyed items not tied to a call signature.
	KindItemized
	// KindSignature holds keyed items that must match a parameter list.
	KindSignature
)

// Item is one keyed entry of an itemized section. Text carries the raw
// remainder of the item block exactly as written, so that rendering an
// unchanged item reproduces the source bytes.
type Item struct {
	Key  string
	Text string
}

// Section is a named block of a docstring. Exactly one of Body or Items is
// meaningful, depending on Kind. A section with an empty body or no items is
// "present but empty", which is distinct from the section being absent from
// the Document.
type Section struct {
	Name  string
	Kind  Kind
	Body  string
	Items []Item
}

// IsEmpty reports whether the section has no content.
func (s Section) IsEmpty() bool {
	if s.Kind == KindPlain {
		return s.Body == ""
	}
	return len(s.Items) == 0
}

// Item returns the item with the given key.
func (s Section) Item(key string) (Item, bool) {
	for _, it := range s.Items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

func (s Section) clone() Section {
	out := s
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

// Document is the ordered sequence of sections parsed from one docstring.
// Section names are unique within a Document.
type Document struct {
	Sections []Section
}

// Section returns the section with the given name.
func (d *Document) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Has reports whether a section with the given name is present.
func (d *Document) Has(name string) bool {
	_, ok := d.Section(name)
	return ok
}

// IsEmpty reports whether the document has no sections at all.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Sections) == 0
}

func (d *Document) add(s Section) {
	for i := range d.Sections {
		if d.Sections[i].Name == s.Name {
			// A repeated header replaces the earlier content but keeps
			// the earlier position, so names stay unique.
			d.Sections[i].Body = s.Body
			d.Sections[i].Items = s.Items
			return
		}
	}
	d.Sections = append(d.Sections, s)
}
