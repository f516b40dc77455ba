package phonenumber

import (
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/regexcache"
	"github.com/xlab/phonenumber/util"
)

// Parse parses input against defaultRegion (a two-letter region code; use
// "ZZ" when the input is expected to carry its own leading '+' and no
// default region applies). It consults DefaultIndex() and DefaultCache.
func Parse(input, defaultRegion string) (PhoneNumber, error) {
	idx, err := requireDefaultIndex()
	if err != nil {
		return PhoneNumber{}, err
	}
	return ParseWith(DefaultCache, idx, input, defaultRegion, false)
}

// ParseAndKeepRaw is Parse, but additionally populates RawInput,
// CountryCodeSource, and PreferredDomesticCarrierCode on the result.
func ParseAndKeepRaw(input, defaultRegion string) (PhoneNumber, error) {
	idx, err := requireDefaultIndex()
	if err != nil {
		return PhoneNumber{}, err
	}
	return ParseWith(DefaultCache, idx, input, defaultRegion, true)
}

// ParseWith is Parse/ParseAndKeepRaw with an explicit cache and index,
// for callers that don't want to go through the package-level defaults
// (tests, or a process juggling more than one metadata.Index).
func ParseWith(cache *regexcache.Cache, idx *metadata.Index, input, defaultRegion string, keepRaw bool) (PhoneNumber, error) {
	candidate, err := buildCandidate(input)
	if err != nil {
		return PhoneNumber{}, err
	}

	if err := checkViable(candidate); err != nil {
		return PhoneNumber{}, err
	}

	if err := checkRegion(idx, candidate, defaultRegion); err != nil {
		return PhoneNumber{}, err
	}

	candidate, extension := stripExtension(candidate)

	rest, countryCode, source, err := extractCountryCode(cache, idx, candidate, defaultRegion)
	if err != nil {
		return PhoneNumber{}, err
	}

	regionMeta := regionMetadataFor(cache, idx, countryCode, source, defaultRegion, rest)

	var carrierCode string
	if stripped, carrier, ok := stripNationalPrefixAndCarrierCode(cache, rest, regionMeta); ok {
		rest, carrierCode = stripped, carrier
	}

	if len(rest) < minLengthForNSN {
		return PhoneNumber{}, newParseError(ErrTooShortNSN, "%q has only %d digits", rest, len(rest))
	}
	if len(rest) > maxLengthForNSN {
		return PhoneNumber{}, newParseError(ErrTooLongNSN, "%q has %d digits", rest, len(rest))
	}

	nationalNumber, perr := util.ParseUint64(rest)
	if perr != nil {
		return PhoneNumber{}, newParseError(ErrNotANumber, "national number %q is not numeric", rest)
	}

	italianLeadingZero, leadingZeros := detectLeadingZero(rest)

	number := PhoneNumber{
		CountryCode:          countryCode,
		NationalNumber:       nationalNumber,
		ItalianLeadingZero:   italianLeadingZero,
		NumberOfLeadingZeros: leadingZeros,
		Extension:            extension,
	}
	if keepRaw {
		number.RawInput = input
		number.CountryCodeSource = source
		number.PreferredDomesticCarrierCode = carrierCode
	}
	return number, nil
}

// regionMetadataFor picks the PhoneMetadata that should govern national-
// prefix stripping and (later) classification: the default region's when
// the country code came from it, otherwise the Index's own disambiguation
// among every region sharing countryCode.
func regionMetadataFor(cache *regexcache.Cache, idx *metadata.Index, countryCode int, source CountryCodeSource, defaultRegion, nationalNumber string) *metadata.PhoneMetadata {
	if countryCode == 0 {
		return nil
	}
	if source == FromDefaultCountry || source == FromNumberWithoutPlusSign {
		if m, ok := idx.MetadataForRegion(defaultRegion); ok {
			return m
		}
	}
	regionID := idx.RegionForNumber(countryCode, nationalNumber, func(m *metadata.PhoneMetadata) bool {
		return classifyMatchesGeneral(cache, nationalNumber, m)
	})
	m, _ := idx.MetadataForRegionOrCallingCode(countryCode, regionID)
	return m
}

func classifyMatchesGeneral(cache *regexcache.Cache, nationalNumber string, m *metadata.PhoneMetadata) bool {
	ok, _ := metadata.Matches(cache, nationalNumber, m.GeneralDesc)
	return ok
}

// detectLeadingZero implements spec.md §4.4 step 9.
func detectLeadingZero(nsn string) (bool, int) {
	if len(nsn) <= 1 || nsn[0] != '0' {
		return false, 0
	}
	count := util.CountLeadingZeros(nsn)
	if count < 1 {
		count = 1
	}
	return true, count
}
