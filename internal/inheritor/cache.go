package inheritor

import (
	"sync"

	"github.com/example/docmerge/pkg/docstring"
)

// parseCache memoizes parsed documents keyed on dialect and raw text, so an
// ancestor referenced by many descendants is parsed once. Cached documents
// are shared read-only; the merge engine never mutates its inputs.
type parseCache struct {
	mu   sync.RWMutex
	docs map[string]*docstring.Document
}

func newParseCache() *parseCache {
	return &parseCache{docs: map[string]*docstring.Document{}}
}

func (c *parseCache) parse(d docstring.Dialect, text string) *docstring.Document {
	key := d.Name() + "\x00" + text

	c.mu.RLock()
	doc, ok := c.docs[key]
	c.mu.RUnlock()
	if ok {
		return doc
	}

	doc = d.Parse(text)
	c.mu.Lock()
	c.docs[key] = doc
	c.mu.Unlock()
	return doc
}
