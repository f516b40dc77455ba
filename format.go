package phonenumber

import (
	"strconv"
	"strings"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/regexcache"
	"github.com/xlab/phonenumber/util"
)

// chooseFormattingPattern implements spec.md §4.6's choose_formatting_pattern:
// the first format whose last leading_digits_pattern partially matches nsn
// (when it has any) and whose own pattern fully matches nsn wins.
func chooseFormattingPattern(cache *regexcache.Cache, formats []*metadata.NumberFormat, nsn string) *metadata.NumberFormat {
	for _, f := range formats {
		if len(f.LeadingDigitsPattern) > 0 {
			last := f.LeadingDigitsPattern[len(f.LeadingDigitsPattern)-1]
			re, err := cache.GetOrCompile("^(?:" + last + ")")
			if err != nil {
				continue
			}
			if loc := re.FindStringIndex(nsn); loc == nil || loc[0] != 0 {
				continue
			}
		}
		re, err := cache.GetOrCompile("^(?:" + f.Pattern + ")$")
		if err != nil {
			continue
		}
		if re.MatchString(nsn) {
			return f
		}
	}
	return nil
}

// formatNationalNumberWithPattern implements spec.md §4.6's format_national:
// f.Format's "$1".."$9" placeholders are filled from f.Pattern's capturing
// groups against nsn; in NATIONAL mode the first placeholder may first be
// rewritten by a carrier-code or national-prefix formatting rule; in RFC3966
// mode the result is hyphenated afterward.
func formatNationalNumberWithPattern(cache *regexcache.Cache, nsn string, f *metadata.NumberFormat, mode Format, nationalPrefix, carrierCode string) string {
	re, err := cache.GetOrCompile("^(?:" + f.Pattern + ")$")
	if err != nil {
		return nsn
	}
	idxs := re.FindStringSubmatchIndex(nsn)
	if idxs == nil {
		return nsn
	}
	groups := submatchStrings(nsn, idxs)

	template := f.Format
	if mode == NATIONAL {
		switch {
		case carrierCode != "" && f.DomesticCarrierCodeFormattingRule != "":
			rule := expandFormatRule(f.DomesticCarrierCodeFormattingRule, nationalPrefix)
			rule = strings.ReplaceAll(rule, "$CC", carrierCode)
			template = strings.Replace(template, "$1", rule, 1)
		case f.NationalPrefixFormattingRule != "":
			rule := expandFormatRule(f.NationalPrefixFormattingRule, nationalPrefix)
			template = strings.Replace(template, "$1", rule, 1)
		}
	}

	formatted := expandNumberedGroups(template, groups)
	if mode == RFC3966 {
		formatted = toRFC3966Hyphenated(formatted)
	}
	return formatted
}

func toRFC3966Hyphenated(s string) string {
	s = regexcache.RFC3966LeadingSeparator.ReplaceAllString(s, "")
	return regexcache.RFC3966SeparatorRun.ReplaceAllString(s, "-")
}

// formatNational picks meta's NumberFormats (or IntlNumberFormats, for
// INTERNATIONAL/RFC3966 when present) and renders nsn through whichever
// entry chooseFormattingPattern selects, falling back to the bare digit
// string when nothing applies or no metadata exists at all.
func formatNational(cache *regexcache.Cache, meta *metadata.PhoneMetadata, nsn string, mode Format, carrierCode string) string {
	if meta == nil {
		return nsn
	}
	formats := meta.NumberFormats
	if (mode == INTERNATIONAL || mode == RFC3966) && len(meta.IntlNumberFormats) > 0 {
		formats = meta.IntlNumberFormats
	}
	f := chooseFormattingPattern(cache, formats, nsn)
	if f == nil {
		return nsn
	}
	return formatNationalNumberWithPattern(cache, nsn, f, mode, meta.NationalPrefix, carrierCode)
}

func formatExtension(meta *metadata.PhoneMetadata, ext string) string {
	if ext == "" {
		return ""
	}
	prefix := " ext. "
	if meta != nil && meta.PreferredExtnPrefix != "" {
		prefix = meta.PreferredExtnPrefix
	}
	return prefix + ext
}

// Format renders n in the requested style, per spec.md §4.6 and the
// bit-exact output shapes of spec.md §6.
func Format(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber, mode Format) string {
	nsn := n.NationalSignificantNumber()
	meta := metadataForNumber(cache, idx, n)
	ccStr := strconv.Itoa(n.CountryCode)

	switch mode {
	case E164:
		return "+" + ccStr + nsn
	case NATIONAL:
		national := formatNational(cache, meta, nsn, NATIONAL, n.PreferredDomesticCarrierCode)
		return national + formatExtension(meta, n.Extension)
	case RFC3966:
		national := formatNational(cache, meta, nsn, RFC3966, n.PreferredDomesticCarrierCode)
		ext := ""
		if n.Extension != "" {
			ext = ";ext=" + n.Extension
		}
		return "tel:+" + ccStr + "-" + national + ext
	default: // INTERNATIONAL
		national := formatNational(cache, meta, nsn, INTERNATIONAL, n.PreferredDomesticCarrierCode)
		return "+" + ccStr + " " + national + formatExtension(meta, n.Extension)
	}
}

// singleIDDPrefix returns pattern unchanged if it's a plain digit string
// (so "it's a single unambiguous prefix", per spec.md §4.6), or "" if it's
// an alternation/pattern that doesn't name one literal prefix.
func singleIDDPrefix(pattern string) string {
	for _, r := range pattern {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return pattern
}

// FormatOutOfCountryCallingNumber implements spec.md §4.6's
// format_out_of_country.
func FormatOutOfCountryCallingNumber(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber, callingFrom string) string {
	if !idx.IsValidRegionCode(callingFrom) {
		return Format(cache, idx, n, INTERNATIONAL)
	}

	if idx.IsNANPARegion(callingFrom) && n.CountryCode == metadata.KNanpaCountryCode {
		return "1 " + Format(cache, idx, n, NATIONAL)
	}

	callingCC := idx.CountryCodeForRegion(callingFrom)
	if callingCC == n.CountryCode {
		return Format(cache, idx, n, NATIONAL)
	}

	callingMeta, _ := idx.MetadataForRegion(callingFrom)
	nsn := n.NationalSignificantNumber()
	meta := metadataForNumber(cache, idx, n)
	national := formatNational(cache, meta, nsn, INTERNATIONAL, n.PreferredDomesticCarrierCode)

	prefix := "+"
	if callingMeta != nil {
		idd := callingMeta.PreferredInternationalPrefix
		if idd == "" {
			idd = singleIDDPrefix(callingMeta.InternationalPrefix)
		}
		if idd != "" {
			prefix = idd + " "
		}
	}

	return prefix + strconv.Itoa(n.CountryCode) + " " + national + formatExtension(meta, n.Extension)
}

func extRFC3966Suffix(ext string) string {
	if ext == "" {
		return ""
	}
	return ";ext=" + ext
}

// FormatByPattern implements spec.md §4.6's format_by_pattern: the same
// rendering engine as Format, but consulting caller-supplied NumberFormats
// instead of the region's own, with $NP/$FG expanded against the region's
// metadata first.
func FormatByPattern(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber, mode Format, userFormats []*metadata.NumberFormat) string {
	nsn := n.NationalSignificantNumber()
	meta := metadataForNumber(cache, idx, n)
	nationalPrefix := ""
	if meta != nil {
		nationalPrefix = meta.NationalPrefix
	}
	ccStr := strconv.Itoa(n.CountryCode)

	f := chooseFormattingPattern(cache, userFormats, nsn)
	national := nsn
	if f != nil {
		patched := *f
		if f.NationalPrefixFormattingRule != "" {
			patched.NationalPrefixFormattingRule = expandFormatRule(f.NationalPrefixFormattingRule, nationalPrefix)
		}
		national = formatNationalNumberWithPattern(cache, nsn, &patched, mode, nationalPrefix, n.PreferredDomesticCarrierCode)
	}

	switch mode {
	case E164:
		return "+" + ccStr + nsn
	case NATIONAL:
		return national + formatExtension(meta, n.Extension)
	case RFC3966:
		return "tel:+" + ccStr + "-" + national + extRFC3966Suffix(n.Extension)
	default:
		return "+" + ccStr + " " + national + formatExtension(meta, n.Extension)
	}
}

// TruncateTooLongNumber implements spec.md §4.6's truncate_too_long_number:
// repeatedly drop a trailing digit until the number validates, aborting
// with the original number unchanged if a shortened candidate ever reports
// TOO_SHORT or the digits run out.
func TruncateTooLongNumber(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber) (PhoneNumber, bool) {
	current := n
	for !IsValidNumber(cache, idx, current) {
		nsn := current.NationalSignificantNumber()
		if len(nsn) <= 1 {
			return n, false
		}
		truncated := nsn[:len(nsn)-1]

		meta := metadataForNumber(cache, idx, current)
		if TestNumberLength(truncated, meta, UnknownType) == TooShort {
			return n, false
		}

		v, err := util.ParseUint64(truncated)
		if err != nil {
			return n, false
		}
		current.NationalNumber = v
		if current.NumberOfLeadingZeros > len(truncated) {
			current.NumberOfLeadingZeros = len(truncated)
		}
	}
	return current, true
}
