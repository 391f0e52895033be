// Package inheritor drives docstring inheritance for the CLI: it walks an
// ancestor chain, merges pairwise with the core engine, caches parsed
// documents and logs similarity warnings. The enable/disable gate lives
// here; the core has no notion of being disabled.
package inheritor

import (
	"io"
	"log/slog"

	"github.com/example/docmerge/pkg/docstring"
)

// Options configures an Inheritor.
type Options struct {
	Dialect docstring.Dialect
	// Enabled gates the whole feature. A disabled Inheritor returns child
	// docstrings unchanged.
	Enabled bool
	// SimilarityRatio is the warning threshold; zero disables the check.
	SimilarityRatio float64
	Logger          *slog.Logger
}

// Inheritor merges docstrings along an ancestor chain. Safe for concurrent
// use; the parse cache is shared and read-only once populated.
type Inheritor struct {
	opts  Options
	cache *parseCache
}

// New creates an Inheritor. A nil logger discards similarity warnings.
func New(opts Options) *Inheritor {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Inheritor{opts: opts, cache: newParseCache()}
}

// InheritFunction merges a single ancestor docstring into a callable's
// docstring and renders the result. params is the callable's ordered
// parameter-name list.
func (in *Inheritor) InheritFunction(parentDoc, childDoc string, params []string) (string, error) {
	return in.InheritFunctionChain([]string{parentDoc}, childDoc, params)
}

// InheritFunctionChain folds ancestors into a callable's docstring, nearest
// ancestor first. The nearest ancestor wins; farther ancestors only fill
// sections every closer level left missing.
func (in *Inheritor) InheritFunctionChain(ancestorDocs []string, childDoc string, params []string) (string, error) {
	if !in.opts.Enabled {
		return childDoc, nil
	}

	current := in.cache.parse(in.opts.Dialect, childDoc)
	for _, ancestorDoc := range ancestorDocs {
		parent := in.cache.parse(in.opts.Dialect, ancestorDoc)
		in.warnSimilar(parent, current)

		merged, err := docstring.MergeFunction(in.opts.Dialect, parent, current, params)
		if err != nil {
			return "", err
		}
		current = merged
	}
	return in.opts.Dialect.Render(current), nil
}

// InheritClass merges a single ancestor docstring into a class-level
// docstring, where no call signature applies.
func (in *Inheritor) InheritClass(parentDoc, childDoc string) (string, error) {
	return in.InheritClassChain([]string{parentDoc}, childDoc)
}

// InheritClassChain is InheritFunctionChain for class-level docstrings.
func (in *Inheritor) InheritClassChain(ancestorDocs []string, childDoc string) (string, error) {
	if !in.opts.Enabled {
		return childDoc, nil
	}

	current := in.cache.parse(in.opts.Dialect, childDoc)
	for _, ancestorDoc := range ancestorDocs {
		parent := in.cache.parse(in.opts.Dialect, ancestorDoc)
		in.warnSimilar(parent, current)
		current = docstring.MergeClass(in.opts.Dialect, parent, current)
	}
	return in.opts.Dialect.Render(current), nil
}

// warnSimilar logs near-duplicate sections between a parent and the current
// child state. Advisory only, never fatal.
func (in *Inheritor) warnSimilar(parent, child *docstring.Document) {
	for _, m := range docstring.Similar(parent, child, in.opts.SimilarityRatio) {
		in.opts.Logger.Warn("child docstring duplicates its parent",
			"section", m.Section,
			"ratio", m.Ratio,
		)
	}
}
