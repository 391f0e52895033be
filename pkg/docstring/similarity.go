package docstring

import "github.com/pmezard/go-difflib/difflib"

// SimilarityMatch reports one near-duplicate between a parent and a child
// section. For itemized sections the Section field carries the item path,
// e.g. "Args/x".
type SimilarityMatch struct {
	Section string
	Ratio   float64
}

// Similar compares the sections present in both documents and returns the
// ones whose content similarity reaches the threshold. Plain sections are
// compared body to body, itemized sections item by item. A threshold of zero
// (or less) disables the comparison entirely. Purely advisory: inputs are
// not modified and nothing is ever raised.
func Similar(parent, child *Document, threshold float64) []SimilarityMatch {
	if threshold <= 0 || parent.IsEmpty() || child.IsEmpty() {
		return nil
	}

	var matches []SimilarityMatch
	for _, cs := range child.Sections {
		ps, ok := parent.Section(cs.Name)
		if !ok {
			continue
		}
		if cs.Kind == KindPlain {
			if r := similarityRatio(ps.Body, cs.Body); r >= threshold {
				matches = append(matches, SimilarityMatch{Section: cs.Name, Ratio: r})
			}
			continue
		}
		for _, it := range cs.Items {
			pit, ok := ps.Item(it.Key)
			if !ok {
				continue
			}
			if r := similarityRatio(pit.Text, it.Text); r >= threshold {
				matches = append(matches, SimilarityMatch{Section: cs.Name + "/" + it.Key, Ratio: r})
			}
		}
	}
	return matches
}

// similarityRatio is a normalized character-level similarity in [0, 1],
// 1 meaning identical content.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
