package regexcache

import (
	"regexp"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the bounded size of a Cache, matching the 128-entry LRU
// the metadata-driven patterns are compiled into.
const DefaultCapacity = 128

// Cache compiles and memoizes regular expressions sourced from phone-number
// metadata (national_number_pattern, leading_digits, format templates, ...).
// It is safe for concurrent use from multiple goroutines.
type Cache struct {
	mu    sync.Mutex
	inner *lru.Cache[string, *regexp.Regexp]
}

// NewCache builds a Cache bounded to capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	inner, err := lru.New[string, *regexp.Regexp](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, which we've just
		// ruled out above.
		panic(err)
	}
	return &Cache{inner: inner}
}

// GetOrCompile returns the compiled regexp for pattern, compiling and
// caching it on first use. A bad pattern is a programmer/metadata error, not
// a runtime condition callers are expected to recover from, so it reports
// its own error rather than panicking the way regexp.MustCompile would.
func (c *Cache) GetOrCompile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.inner.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.inner.Add(pattern, re)
	return re, nil
}

// MustGetOrCompile is like GetOrCompile but panics on a bad pattern. Intended
// for patterns sourced from the compiled-in metadata blob, where a bad
// pattern is a fatal initialization error per spec.
func (c *Cache) MustGetOrCompile(pattern string) *regexp.Regexp {
	re, err := c.GetOrCompile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Len reports the number of patterns currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}
