package docstring

import (
	"errors"
	"fmt"
)

// ErrNoSignature is returned when a signature-bound section needs merging
// but no parameter list was supplied. Guessing an order here would corrupt
// the rendered parameter list, so the caller has to decide.
var ErrNoSignature = errors.New("signature parameters required")

// MergeFunction merges the docstring Documents of a callable. params is the
// ordered parameter-name list of the child's signature; the merged
// signature-bound section is filtered and reordered to match it exactly,
// with undocumented parameters getting the missing-description placeholder.
//
// A nil params with a signature-bound section present in either input is a
// caller-contract violation. An empty, non-nil params is valid (a callable
// without documentable parameters).
func MergeFunction(d Dialect, parent, child *Document, params []string) (*Document, error) {
	if params == nil {
		if docHas(parent, d.ArgsSection()) || docHas(child, d.ArgsSection()) {
			return nil, fmt.Errorf("%w: section %q is present", ErrNoSignature, d.ArgsSection())
		}
		return mergeDocuments(d, parent, child, nil, false), nil
	}
	return mergeDocuments(d, parent, child, params, true), nil
}

// MergeClass merges class-level docstring Documents. There is no signature
// to check against, so the signature-bound section degenerates to the plain
// itemized rule.
func MergeClass(d Dialect, parent, child *Document) *Document {
	return mergeDocuments(d, parent, child, nil, false)
}

// mergeDocuments applies the per-kind inheritance rules and orders the
// result canonically. Neither input is mutated.
//
// Rules: plain sections are fully replaced by the child when it defines them
// (an explicitly empty child section suppresses the parent's); itemized
// sections take the union of items with child descriptions winning and
// child-only keys appended; the signature-bound section additionally gets
// filtered, reordered and placeholder-filled against params. Sections left
// empty are dropped.
func mergeDocuments(d Dialect, parent, child *Document, params []string, hasSignature bool) *Document {
	if parent == nil {
		parent = &Document{}
	}
	if child == nil {
		child = &Document{}
	}

	argsName := d.ArgsSection()
	merged := map[string]Section{}
	var seen []string

	for _, s := range parent.Sections {
		merged[s.Name] = s.clone()
		seen = append(seen, s.Name)
	}

	suppressed := false
	for _, s := range child.Sections {
		prev, inParent := merged[s.Name]
		if !inParent {
			seen = append(seen, s.Name)
		}

		switch kindOf(d, s.Name) {
		case KindPlain:
			// Full replacement, even by an empty body.
			merged[s.Name] = s.clone()
		case KindSignature:
			if hasSignature && len(s.Items) == 0 {
				// Explicit empty override: nothing to document, and no
				// placeholder fill either.
				suppressed = true
				merged[s.Name] = Section{Name: s.Name, Kind: KindSignature}
				continue
			}
			fallthrough
		case KindItemized:
			if inParent {
				merged[s.Name] = mergeItems(prev, s)
			} else {
				merged[s.Name] = s.clone()
			}
		}
	}

	if hasSignature {
		if suppressed {
			delete(merged, argsName)
		} else {
			sec := applySignature(d, merged[argsName], params)
			if len(sec.Items) == 0 {
				delete(merged, argsName)
			} else {
				merged[argsName] = sec
				if !contains(seen, argsName) {
					seen = append(seen, argsName)
				}
			}
		}
	}

	out := &Document{}
	emit := func(name string) {
		s, ok := merged[name]
		if !ok || s.IsEmpty() {
			return
		}
		out.Sections = append(out.Sections, s)
		delete(merged, name)
	}
	for _, name := range sectionOrder(d) {
		emit(name)
	}
	for _, name := range seen {
		emit(name)
	}
	return out
}

// mergeItems merges two same-named itemized sections: parent order first
// with child texts overriding per key, then child-only keys in child order.
func mergeItems(parent, child Section) Section {
	items := make([]Item, len(parent.Items))
	copy(items, parent.Items)
	for _, it := range child.Items {
		replaced := false
		for i := range items {
			if items[i].Key == it.Key {
				items[i].Text = it.Text
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, it)
		}
	}
	return Section{Name: parent.Name, Kind: parent.Kind, Items: items}
}

// applySignature rebuilds the signature-bound section against the parameter
// list: one item per parameter, in signature order, with the dialect's
// placeholder for parameters no side documents. Items for parameters no
// longer in the signature are dropped. The section is synthesized even when
// neither side documented it, so rendered parameter lists stay complete.
func applySignature(d Dialect, sec Section, params []string) Section {
	items := make([]Item, 0, len(params))
	for _, name := range params {
		if it, ok := sec.Item(name); ok {
			items = append(items, it)
		} else {
			items = append(items, Item{Key: name, Text: d.missingItemText()})
		}
	}
	return Section{Name: d.ArgsSection(), Kind: KindSignature, Items: items}
}

func docHas(doc *Document, name string) bool {
	return doc != nil && doc.Has(name)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
