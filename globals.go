package phonenumber

import (
	"sync"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/regexcache"
)

// DefaultCache is the process-wide RegexCache used by every function in
// this package that doesn't take an explicit one. It is safe for
// concurrent use; see regexcache.Cache.
var DefaultCache = regexcache.NewCache(regexcache.DefaultCapacity)

var (
	defaultIndexMu sync.RWMutex
	defaultIndex   *metadata.Index
)

// SetDefaultIndex installs idx as the package's default metadata.Index,
// used by every exported function that doesn't take an explicit one. This
// is how a binary wires in its own compiled-in metadata.Load result; the
// blob itself is outside this module's scope (spec.md §4.3), so there is no
// built-in default until a caller sets one.
func SetDefaultIndex(idx *metadata.Index) {
	defaultIndexMu.Lock()
	defer defaultIndexMu.Unlock()
	defaultIndex = idx
}

// DefaultIndex returns the package's default metadata.Index, or nil if
// SetDefaultIndex was never called.
func DefaultIndex() *metadata.Index {
	defaultIndexMu.RLock()
	defer defaultIndexMu.RUnlock()
	return defaultIndex
}

// errNoDefaultIndex is returned by the default-index convenience functions
// when SetDefaultIndex has not been called.
var errNoDefaultIndex = newParseError(ErrInvalidCountryCode, "no default metadata.Index configured; call SetDefaultIndex first")

func requireDefaultIndex() (*metadata.Index, error) {
	idx := DefaultIndex()
	if idx == nil {
		return nil, errNoDefaultIndex
	}
	return idx, nil
}
