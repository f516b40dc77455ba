// Package phonenumber parses, validates, classifies, and formats
// international telephone numbers against country-specific rules drawn from
// a metadata corpus (one record per ITU region or non-geographical "global
// network" calling code).
//
// Pipeline
//
// Parse (and ParseAndKeepRaw) turn free-form text plus a default region
// into a canonical PhoneNumber. IsValidNumber, IsPossibleNumber, and
// GetNumberType classify a parsed PhoneNumber. Format renders one in any of
// four output modes (E164, INTERNATIONAL, NATIONAL, RFC3966). The aytf
// sub-package reformats a partial number incrementally, one keystroke at a
// time, without going through the full parser.
//
// Metadata
//
// All of the above consult a metadata.Index, built once from a compiled-in
// blob (metadata.Load) or, in tests, from hand-built fixtures
// (metadata/fixtures). DefaultIndex returns the instance a caller installed
// with SetDefaultIndex; nothing is loaded automatically, so it is nil (and
// Parse/ParseAndKeepRaw fail) until SetDefaultIndex has been called. Every
// exported function in this package also has a form that takes an explicit
// *metadata.Index for callers who manage their own.
//
// About
//
// This package has no I/O of its own beyond the one-time metadata blob
// load: parsing, validating, and formatting are pure, thread-safe functions
// over caller-owned values.
package phonenumber
