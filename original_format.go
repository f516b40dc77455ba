package phonenumber

import (
	"strings"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/norm"
	"github.com/xlab/phonenumber/regexcache"
)

// userTypedNationalPrefix approximates whether raw already contains meta's
// national prefix, used by FormatInOriginalFormat to decide whether
// reproducing a national_prefix_formatting_rule would insert a digit
// sequence the caller never typed.
func userTypedNationalPrefix(raw string, meta *metadata.PhoneMetadata) bool {
	if meta == nil || meta.NationalPrefix == "" || raw == "" {
		return false
	}
	digits := norm.NormalizeDigitsOnly(raw)
	return strings.HasPrefix(digits, meta.NationalPrefix)
}

// FormatInOriginalFormat implements spec.md §4.6's format_in_original_format.
func FormatInOriginalFormat(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber, callingFrom string) string {
	nsn := n.NationalSignificantNumber()
	meta := metadataForNumber(cache, idx, n)

	if n.RawInput != "" && (meta == nil || chooseFormattingPattern(cache, meta.NumberFormats, nsn) == nil) {
		return n.RawInput
	}

	var formatted string
	switch n.CountryCodeSource {
	case CountryCodeSourceUnspecified:
		formatted = Format(cache, idx, n, NATIONAL)
	case FromNumberWithPlusSign:
		formatted = Format(cache, idx, n, INTERNATIONAL)
	case FromNumberWithIDD:
		formatted = FormatOutOfCountryCallingNumber(cache, idx, n, callingFrom)
	case FromNumberWithoutPlusSign:
		formatted = strings.TrimPrefix(Format(cache, idx, n, INTERNATIONAL), "+")
	default: // FromDefaultCountry
		var f *metadata.NumberFormat
		if meta != nil {
			f = chooseFormattingPattern(cache, meta.NumberFormats, nsn)
		}
		if f != nil && f.NationalPrefixFormattingRule != "" && !userTypedNationalPrefix(n.RawInput, meta) {
			patched := *f
			patched.NationalPrefixFormattingRule = ""
			formatted = formatNationalNumberWithPattern(cache, nsn, &patched, NATIONAL, meta.NationalPrefix, n.PreferredDomesticCarrierCode) +
				formatExtension(meta, n.Extension)
		} else {
			formatted = Format(cache, idx, n, NATIONAL)
		}
	}

	if n.RawInput != "" {
		rawDigits := norm.NormalizeDiallableCharsOnly(n.RawInput)
		outDigits := norm.NormalizeDiallableCharsOnly(formatted)
		if rawDigits != outDigits {
			return n.RawInput
		}
	}
	return formatted
}
