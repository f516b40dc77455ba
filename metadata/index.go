package metadata

import "regexp"

// Index is the process-wide set of lookups the parser, validator, and
// formatter need. It is built once (by NewIndex, usually fed by Load) and
// never mutated afterward; once built it is safe to read from any number of
// goroutines without further synchronization, matching spec.md §5.
type Index struct {
	regionToMetadata    map[string]*PhoneMetadata
	nonGeoCodeToMetadata map[int]*PhoneMetadata
	codeToRegions        map[int][]string
	nanpaRegions         map[string]bool
}

// KNanpaCountryCode is the country calling code shared by every NANPA
// region (US, Canada, and the Caribbean members).
const KNanpaCountryCode = 1

// NewIndex builds an Index from a flat list of metadata records. Region
// ordering within a shared country code puts the MainCountryForCode region
// first (front-insert), all others in encounter order (back-insert) — the
// ordering spec.md §4.3 requires.
func NewIndex(metadatas []*PhoneMetadata) *Index {
	idx := &Index{
		regionToMetadata:     make(map[string]*PhoneMetadata, len(metadatas)),
		nonGeoCodeToMetadata: make(map[int]*PhoneMetadata),
		codeToRegions:        make(map[int][]string),
		nanpaRegions:         make(map[string]bool),
	}

	for _, m := range metadatas {
		if m.IsNonGeographical() {
			idx.nonGeoCodeToMetadata[m.CountryCode] = m
			continue
		}
		idx.regionToMetadata[m.ID] = m

		if m.MainCountryForCode {
			idx.codeToRegions[m.CountryCode] = append([]string{m.ID}, idx.codeToRegions[m.CountryCode]...)
		} else {
			idx.codeToRegions[m.CountryCode] = append(idx.codeToRegions[m.CountryCode], m.ID)
		}

		if m.CountryCode == KNanpaCountryCode {
			idx.nanpaRegions[m.ID] = true
		}
	}

	return idx
}

// MetadataForRegion returns the metadata for a two-letter region code.
func (idx *Index) MetadataForRegion(region string) (*PhoneMetadata, bool) {
	m, ok := idx.regionToMetadata[region]
	return m, ok
}

// MetadataForNonGeo returns the metadata for a non-geographical calling
// code (e.g. 800).
func (idx *Index) MetadataForNonGeo(countryCode int) (*PhoneMetadata, bool) {
	m, ok := idx.nonGeoCodeToMetadata[countryCode]
	return m, ok
}

// MetadataForRegionOrCallingCode looks up non-geographical metadata when
// regionCode is RegionCodeForNonGeoEntity, and geographical metadata
// otherwise.
func (idx *Index) MetadataForRegionOrCallingCode(countryCode int, regionCode string) (*PhoneMetadata, bool) {
	if regionCode == RegionCodeForNonGeoEntity {
		return idx.MetadataForNonGeo(countryCode)
	}
	return idx.MetadataForRegion(regionCode)
}

// RegionForCountryCode returns the first (preferred) region registered for
// countryCode, or "ZZ" if none is known.
func (idx *Index) RegionForCountryCode(countryCode int) string {
	regions := idx.codeToRegions[countryCode]
	if len(regions) == 0 {
		return "ZZ"
	}
	return regions[0]
}

// RegionsForCountryCode returns every region sharing countryCode, ordered
// with the MainCountryForCode region first.
func (idx *Index) RegionsForCountryCode(countryCode int) []string {
	return idx.codeToRegions[countryCode]
}

// IsNANPARegion reports whether region shares NANPA's country calling code.
func (idx *Index) IsNANPARegion(region string) bool {
	return idx.nanpaRegions[region]
}

// IsValidRegionCode reports whether region names a region this Index knows
// about (including the non-geographical sentinel, if any non-geo metadata
// was loaded at all).
func (idx *Index) IsValidRegionCode(region string) bool {
	if region == RegionCodeForNonGeoEntity {
		return len(idx.nonGeoCodeToMetadata) > 0
	}
	_, ok := idx.regionToMetadata[region]
	return ok
}

// CountryCodeExists reports whether any region or non-geographical entity
// registers countryCode.
func (idx *Index) CountryCodeExists(countryCode int) bool {
	if _, ok := idx.codeToRegions[countryCode]; ok {
		return true
	}
	_, ok := idx.nonGeoCodeToMetadata[countryCode]
	return ok
}

// CountryCodeForRegion returns the calling code registered for region, or 0
// if region is unknown.
func (idx *Index) CountryCodeForRegion(region string) int {
	m, ok := idx.regionToMetadata[region]
	if !ok {
		return 0
	}
	return m.CountryCode
}

// RegionForNumber disambiguates among the regions sharing countryCode by
// trying each one's LeadingDigits pattern against nationalNumber first,
// falling back to classify (typically a number-type check) for regions
// without one, as spec.md §4.3 requires. classify may be nil, in which case
// only the leading-digits heuristic (and the single-region shortcut) apply.
func (idx *Index) RegionForNumber(countryCode int, nationalNumber string, classify func(m *PhoneMetadata) bool) string {
	regions := idx.codeToRegions[countryCode]
	if len(regions) == 0 {
		if m, ok := idx.nonGeoCodeToMetadata[countryCode]; ok {
			return m.ID
		}
		return "ZZ"
	}
	if len(regions) == 1 {
		return regions[0]
	}
	for _, r := range regions {
		m := idx.regionToMetadata[r]
		if m.LeadingDigits == "" {
			continue
		}
		if leadingDigitsMatch(m.LeadingDigits, nationalNumber) {
			return r
		}
	}
	if classify != nil {
		for _, r := range regions {
			m := idx.regionToMetadata[r]
			if classify(m) {
				return r
			}
		}
	}
	return "ZZ"
}

// leadingDigitsMatch reports whether pattern partially matches (anchored at
// the start) the beginning of nationalNumber. A malformed pattern is
// treated as a non-match rather than propagated, since this is only used as
// a disambiguation heuristic.
func leadingDigitsMatch(pattern, nationalNumber string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	loc := re.FindStringIndex(nationalNumber)
	return loc != nil && loc[0] == 0
}
