package docstring

// SummarySection is the name given to the leading, header-less part of a
// docstring (short and extended summary).
const SummarySection = "Summary"

// ExtendedSummarySection is recognized as its own section when written with
// an explicit header.
const ExtendedSummarySection = "Extended Summary"

// MissingDescription is the placeholder inserted for a signature parameter
// that no ancestor documents. It is identical for both dialects; only the
// surrounding item layout differs.
const MissingDescription = "The description is missing."

// standardSections lists the recognized section names in canonical output
// order. The placeholder at index 2 stands for the dialect's signature-bound
// section (Parameters or Args). Names outside this table keep their
// first-seen order and render after all known names.
var standardSections = []string{
	SummarySection,
	ExtendedSummarySection,
	"", // signature-bound section, dialect-specific
	"Returns",
	"Yields",
	"Receives",
	"Other Parameters",
	"Attributes",
	"Methods",
	"Raises",
	"Warns",
	"Warnings",
	"See Also",
	"Notes",
	"References",
	"Examples",
}

// itemizedSections are the keyed sections that are not bound to a call
// signature, for both dialects.
var itemizedSections = map[string]bool{
	"Other Parameters": true,
	"Attributes":       true,
	"Methods":          true,
}

// sectionOrder returns the canonical section order for a dialect.
func sectionOrder(d Dialect) []string {
	names := make([]string, len(standardSections))
	copy(names, standardSections)
	names[2] = d.ArgsSection()
	return names
}

// kindOf returns the merge kind of a section name under a dialect.
func kindOf(d Dialect, name string) Kind {
	switch {
	case name == d.ArgsSection():
		return KindSignature
	case itemizedSections[name]:
		return KindItemized
	default:
		return KindPlain
	}
}
