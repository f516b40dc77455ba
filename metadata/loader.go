package metadata

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

// ErrDecode wraps any failure to decode a metadata blob. Per spec.md §7,
// this is always a fatal initialization error — callers are not expected to
// recover and keep running with a partially-loaded Index.
var ErrDecode = errors.New("metadata: failed to decode blob")

// Load decodes a compiled-in metadata blob (as produced by Encode) into an
// Index. The wire format itself is explicitly out of this module's scope
// per spec.md §4.3/§6 ("Exact encoding is external to this spec"); Load and
// Encode exist only so the rest of the module has something concrete to
// depend on instead of inventing placeholder data at every call site.
func Load(r io.Reader) (*Index, error) {
	var records []*PhoneMetadata
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return NewIndex(records), nil
}

// Encode serializes metadata records into the blob format Load expects.
// Used by whatever offline build step produces the compiled-in blob; not
// exercised on the hot path.
func Encode(records []*PhoneMetadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return buf.Bytes(), nil
}
