package phonenumber

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/norm"
	"github.com/xlab/phonenumber/regexcache"
)

// stripIDDPrefix tries to consume meta's international_prefix pattern from
// the start of normalized. The digit immediately following a successful
// match must not be '0' (country codes never start with 0).
func stripIDDPrefix(cache *regexcache.Cache, normalized, iddPattern string) (string, bool) {
	if iddPattern == "" {
		return normalized, false
	}
	re, err := cache.GetOrCompile("^(?:" + iddPattern + ")")
	if err != nil {
		return normalized, false
	}
	loc := re.FindStringIndex(normalized)
	if loc == nil || loc[0] != 0 {
		return normalized, false
	}
	rest := normalized[loc[1]:]
	if rest != "" && rest[0] == '0' {
		return normalized, false
	}
	return rest, true
}

// maybeStripInternationalPrefixAndNormalize is the first half of spec.md
// §4.4 step 6: strip a leading plus-sign or IDD prefix and normalize what's
// left to plain digits, tagging how it got there.
func maybeStripInternationalPrefixAndNormalize(cache *regexcache.Cache, candidate string, defaultMeta *metadata.PhoneMetadata) (string, CountryCodeSource) {
	if beginsWithPlus(candidate) {
		_, size := utf8.DecodeRuneInString(candidate)
		return norm.Normalize(candidate[size:]), FromNumberWithPlusSign
	}
	normalized := norm.Normalize(candidate)
	if defaultMeta != nil {
		if stripped, ok := stripIDDPrefix(cache, normalized, defaultMeta.InternationalPrefix); ok {
			return stripped, FromNumberWithIDD
		}
	}
	return normalized, FromDefaultCountry
}

// readCountryCode reads 1, 2, then 3 leading digits of digits, returning the
// first prefix length that names a known country calling code.
func readCountryCode(idx *metadata.Index, digits string) (cc int, rest string, ok bool) {
	max := 3
	if len(digits) < max {
		max = len(digits)
	}
	for n := 1; n <= max; n++ {
		v, err := strconv.Atoi(digits[:n])
		if err != nil {
			continue
		}
		if idx.CountryCodeExists(v) {
			return v, digits[n:], true
		}
	}
	return 0, digits, false
}

// extractCountryCode implements spec.md §4.4 step 6 in full: international
// prefix stripping, the plus-sign/IDD country-code search (with its one
// retry), and the default-region implicit-stripping fallback.
func extractCountryCode(cache *regexcache.Cache, idx *metadata.Index, candidate, defaultRegion string) (rest string, countryCode int, source CountryCodeSource, err error) {
	defaultMeta, _ := idx.MetadataForRegion(defaultRegion)

	normalized, source := maybeStripInternationalPrefixAndNormalize(cache, candidate, defaultMeta)

	if source != FromDefaultCountry {
		if len(normalized) < minLengthForNSN {
			return "", 0, source, newParseError(ErrTooShortAfterIDD, "only %d digits remain after stripping the international prefix", len(normalized))
		}
		if cc, r, ok := readCountryCode(idx, normalized); ok {
			return r, cc, source, nil
		}
		if source == FromNumberWithPlusSign && defaultMeta != nil {
			if retried, ok := stripIDDPrefix(cache, normalized, defaultMeta.InternationalPrefix); ok {
				if cc, r, ok2 := readCountryCode(idx, retried); ok2 {
					return r, cc, FromNumberWithIDD, nil
				}
			}
		}
		return "", 0, source, newParseError(ErrInvalidCountryCode, "no known country calling code found in %q", normalized)
	}

	if defaultMeta == nil {
		return normalized, 0, source, nil
	}

	ccStr := strconv.Itoa(defaultMeta.CountryCode)
	if strings.HasPrefix(normalized, ccStr) && len(normalized) > len(ccStr) {
		stripped := normalized[len(ccStr):]
		unstrippedMatches, _ := metadata.Matches(cache, normalized, defaultMeta.GeneralDesc)
		strippedMatches, _ := metadata.Matches(cache, stripped, defaultMeta.GeneralDesc)
		lengths := defaultMeta.GeneralDesc.EffectivePossibleLength(defaultMeta.GeneralDesc)
		unstrippedLength := metadata.TestLength(len(normalized), lengths, defaultMeta.GeneralDesc.PossibleLengthLocalOnly)
		if (strippedMatches && !unstrippedMatches) || unstrippedLength == metadata.LengthTooLong {
			return stripped, defaultMeta.CountryCode, FromNumberWithoutPlusSign, nil
		}
	}
	return normalized, defaultMeta.CountryCode, FromDefaultCountry, nil
}
