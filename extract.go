package phonenumber

import (
	"strings"
	"unicode/utf8"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/norm"
	"github.com/xlab/phonenumber/regexcache"
)

// minLengthForNSN and maxLengthForNSN bound a national significant number's
// digit count, per spec.md §4.4 steps 3 and 8.
const (
	minLengthForNSN = 2
	maxLengthForNSN = 17
)

const phoneContextMarker = ";phone-context="
const isdnSubaddressMarker = ";isub="
const telPrefix = "tel:"

// buildCandidate runs spec.md §4.4 step 1: build the raw candidate national
// string, honoring an RFC3966 phone-context if present, then strips any
// ISDN subaddress.
func buildCandidate(raw string) (string, error) {
	var candidate string
	if i := strings.Index(raw, phoneContextMarker); i != -1 {
		c, err := buildFromPhoneContext(raw, i)
		if err != nil {
			return "", err
		}
		candidate = c
	} else {
		candidate = extractPossibleNumber(raw)
	}
	return stripISDNSubaddress(candidate), nil
}

func buildFromPhoneContext(raw string, markerIdx int) (string, error) {
	context := raw[markerIdx+len(phoneContextMarker):]
	if semi := strings.IndexByte(context, ';'); semi != -1 {
		context = context[:semi]
	}
	if !regexcache.PhoneContextValid(context) {
		return "", newParseError(ErrNotANumber, "invalid phone-context %q", context)
	}

	body := raw[:markerIdx]
	if t := strings.Index(body, telPrefix); t != -1 {
		body = body[t+len(telPrefix):]
	}

	// A plus-sign phone-context supplies the country code for a body that's
	// otherwise just a local/national number. If body already carries its
	// own leading plus, it's already a complete global number and the
	// context would only duplicate the country code, so it's left alone.
	var prefix string
	if beginsWithPlus(context) && !beginsWithPlus(body) {
		prefix = context
	}
	return prefix + body, nil
}

func stripISDNSubaddress(s string) string {
	if i := strings.Index(s, isdnSubaddressMarker); i != -1 {
		return s[:i]
	}
	return s
}

// extractPossibleNumber implements spec.md §4.4 step 2: advance to the
// first valid-start-char, trim a trailing unwanted-end-char run, then chop
// off anything from an alternate second number onward.
func extractPossibleNumber(raw string) string {
	loc := regexcache.FirstValidStartChar.FindStringIndex(raw)
	if loc == nil {
		return ""
	}
	s := raw[loc[0]:]
	s = regexcache.UnwantedEndChar.ReplaceAllString(s, "")
	if m := regexcache.CaptureUpToSecondNumberStart.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	return s
}

// checkViable implements spec.md §4.4 step 3.
func checkViable(candidate string) error {
	if len(candidate) < minLengthForNSN || !regexcache.ValidPhoneNumber.MatchString(candidate) {
		return newParseError(ErrNotANumber, "%q is not a viable phone number", candidate)
	}
	return nil
}

// checkRegion implements spec.md §4.4 step 4.
func checkRegion(idx *metadata.Index, candidate, defaultRegion string) error {
	if !idx.IsValidRegionCode(defaultRegion) && !beginsWithPlus(candidate) {
		return newParseError(ErrInvalidCountryCode, "missing or unknown default region %q and no leading plus sign", defaultRegion)
	}
	return nil
}

// stripExtension implements spec.md §4.4 step 5: the first non-empty
// capturing group of ExtensionPattern is the extension; its span (including
// the label) is removed from candidate.
func stripExtension(candidate string) (rest, extension string) {
	m := regexcache.ExtensionPattern.FindStringSubmatchIndex(candidate)
	if m == nil {
		return candidate, ""
	}
	for i := 1; i < len(m)/2; i++ {
		start, end := m[2*i], m[2*i+1]
		if start >= 0 && end > start {
			return candidate[:m[0]], candidate[start:end]
		}
	}
	return candidate, ""
}

func beginsWithPlus(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return norm.IsPlusChar(r)
}
