package phonenumber

import (
	"strings"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/norm"
	"github.com/xlab/phonenumber/regexcache"
)

// MatchNumberPair implements spec.md §4.5's match_number_pair over two
// already-parsed numbers.
func MatchNumberPair(a, b PhoneNumber) MatchType {
	if a.Extension != "" && b.Extension != "" && a.Extension != b.Extension {
		return NoMatch
	}

	aNSN, bNSN := a.NationalSignificantNumber(), b.NationalSignificantNumber()

	if a.CountryCode != 0 && b.CountryCode != 0 {
		if a.CoreEqual(b) {
			return ExactMatch
		}
		if a.CountryCode == b.CountryCode && isSuffixMatch(aNSN, bNSN) {
			return ShortNSNMatch
		}
		return NoMatch
	}

	// At least one side lacks a country code: the spec has callers "forcibly
	// align codes and retry", which for two bare national numbers reduces to
	// comparing the NSNs directly.
	if aNSN == bNSN {
		return NSNMatch
	}
	if isSuffixMatch(aNSN, bNSN) {
		return ShortNSNMatch
	}
	return NoMatch
}

// isSuffixMatch reports whether the shorter of a, b is a proper suffix of
// the longer one.
func isSuffixMatch(a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}
	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}
	return strings.HasSuffix(longer, shorter)
}

// IsNumberMatch implements the string-input variant of match_number_pair:
// both inputs are first parsed as complete international numbers (region
// "ZZ", which requires a leading '+'); when that succeeds on both sides the
// parsed comparison above is authoritative. When either input can't stand on
// its own as a region-less number, fall back to comparing normalized digit
// strings with no region checks at all, per spec.md §4.5.
func IsNumberMatch(cache *regexcache.Cache, idx *metadata.Index, first, second string) MatchType {
	a, errA := ParseWith(cache, idx, first, "ZZ", false)
	b, errB := ParseWith(cache, idx, second, "ZZ", false)
	if errA == nil && errB == nil {
		return MatchNumberPair(a, b)
	}

	na, nb := norm.NormalizeDigitsOnly(first), norm.NormalizeDigitsOnly(second)
	if na == "" || nb == "" {
		return NoMatch
	}
	if na == nb {
		return NSNMatch
	}
	if isSuffixMatch(na, nb) {
		return ShortNSNMatch
	}
	return NoMatch
}
