package phonenumber

import (
	"sort"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/regexcache"
)

// descForType maps a NumberType to the PhoneNumberDesc that describes it
// within meta. UnknownType (like any type not listed) gets general_desc.
// FixedLineOrMobile has no single desc (it is a union) and is handled by
// effectiveLengthsForType instead; passed here, it also gets general_desc.
func descForType(meta *metadata.PhoneMetadata, t NumberType) *metadata.PhoneNumberDesc {
	switch t {
	case FixedLine:
		return meta.FixedLine
	case Mobile:
		return meta.Mobile
	case TollFree:
		return meta.TollFree
	case PremiumRate:
		return meta.PremiumRate
	case SharedCost:
		return meta.SharedCost
	case Voip:
		return meta.Voip
	case PersonalNumber:
		return meta.PersonalNumber
	case Pager:
		return meta.Pager
	case Uan:
		return meta.Uan
	case Voicemail:
		return meta.Voicemail
	default:
		return meta.GeneralDesc
	}
}

func localOnlyOf(desc *metadata.PhoneNumberDesc) []int {
	if desc == nil {
		return nil
	}
	return desc.PossibleLengthLocalOnly
}

func unionInts(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// effectiveLengthsForType resolves the possible-length pair test_number_length
// needs to consult, handling FIXED_LINE_OR_MOBILE's union and every other
// type's general_desc fallback (spec.md §4.5).
func effectiveLengthsForType(meta *metadata.PhoneMetadata, t NumberType) ([]int, []int) {
	general := meta.GeneralDesc
	if t == FixedLineOrMobile {
		lengths := unionInts(
			meta.FixedLine.EffectivePossibleLength(general),
			meta.Mobile.EffectivePossibleLength(general),
		)
		localOnly := unionInts(localOnlyOf(meta.FixedLine), localOnlyOf(meta.Mobile))
		return lengths, localOnly
	}
	desc := descForType(meta, t)
	return desc.EffectivePossibleLength(general), localOnlyOf(desc)
}

// TestNumberLength implements spec.md §4.5's test_number_length: classify
// nsn's length against meta's possible-length data for numType.
func TestNumberLength(nsn string, meta *metadata.PhoneMetadata, numType NumberType) ValidationResult {
	if meta == nil {
		return InvalidCountryCode
	}
	lengths, localOnly := effectiveLengthsForType(meta, numType)
	switch metadata.TestLength(len(nsn), lengths, localOnly) {
	case metadata.LengthTooShort:
		return TooShort
	case metadata.LengthTooLong:
		return TooLong
	case metadata.LengthIsPossible:
		return IsPossible
	case metadata.LengthIsPossibleLocalOnly:
		return IsPossibleLocalOnly
	default:
		return InvalidLength
	}
}

// metadataForNumber resolves the PhoneMetadata governing n, disambiguating
// among regions sharing n.CountryCode by type classification (spec.md
// §4.3's region_for_number, fed a classify callback built from
// number_type_helper, mirroring how the parser resolves the same question
// for an already-split national number).
func metadataForNumber(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber) *metadata.PhoneMetadata {
	if n.CountryCode == 0 {
		return nil
	}
	nsn := n.NationalSignificantNumber()
	regionID := idx.RegionForNumber(n.CountryCode, nsn, func(m *metadata.PhoneMetadata) bool {
		return numberTypeHelper(cache, nsn, m) != UnknownType
	})
	m, _ := idx.MetadataForRegionOrCallingCode(n.CountryCode, regionID)
	return m
}

// IsPossibleNumber reports whether n's length is plausible for its region,
// without checking that it actually matches any number type's pattern.
func IsPossibleNumber(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber) bool {
	meta := metadataForNumber(cache, idx, n)
	if meta == nil {
		return false
	}
	switch TestNumberLength(n.NationalSignificantNumber(), meta, UnknownType) {
	case IsPossible, IsPossibleLocalOnly:
		return true
	default:
		return false
	}
}

// IsValidNumber reports whether n matches some concrete number type within
// its region's metadata.
func IsValidNumber(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber) bool {
	return GetNumberType(cache, idx, n) != UnknownType
}

// GetNumberType classifies n, returning UnknownType if no region metadata
// can be found for it or if it matches no type's pattern.
func GetNumberType(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber) NumberType {
	meta := metadataForNumber(cache, idx, n)
	if meta == nil {
		return UnknownType
	}
	return numberTypeHelper(cache, n.NationalSignificantNumber(), meta)
}

// numberTypeHelper implements spec.md §4.5's number_type_helper: the number
// must match general_desc, then the non-geographic/service types are tried
// in the spec's fixed order, then fixed-line vs. mobile (with the
// same-pattern-region special case).
func numberTypeHelper(cache *regexcache.Cache, nsn string, meta *metadata.PhoneMetadata) NumberType {
	if ok, _ := metadata.Matches(cache, nsn, meta.GeneralDesc); !ok {
		return UnknownType
	}

	serviceTypes := []struct {
		desc *metadata.PhoneNumberDesc
		typ  NumberType
	}{
		{meta.PremiumRate, PremiumRate},
		{meta.TollFree, TollFree},
		{meta.SharedCost, SharedCost},
		{meta.Voip, Voip},
		{meta.PersonalNumber, PersonalNumber},
		{meta.Pager, Pager},
		{meta.Uan, Uan},
		{meta.Voicemail, Voicemail},
	}
	for _, st := range serviceTypes {
		if ok, _ := metadata.Matches(cache, nsn, st.desc); ok {
			return st.typ
		}
	}

	if fixedOK, _ := metadata.Matches(cache, nsn, meta.FixedLine); fixedOK {
		mobileOK, _ := metadata.Matches(cache, nsn, meta.Mobile)
		if meta.SameMobileAndFixedLinePattern || mobileOK {
			return FixedLineOrMobile
		}
		return FixedLine
	}
	if mobileOK, _ := metadata.Matches(cache, nsn, meta.Mobile); mobileOK {
		return Mobile
	}
	return UnknownType
}

// CanBeInternationallyDialled reports whether n can be dialled from outside
// its own region: true whenever no metadata is found for it, false only
// when it matches no_international_dialling. Non-geographical numbers such
// as +800 resolve to their "001" metadata and are judged the same way.
func CanBeInternationallyDialled(cache *regexcache.Cache, idx *metadata.Index, n PhoneNumber) bool {
	meta := metadataForNumber(cache, idx, n)
	if meta == nil {
		return true
	}
	ok, _ := metadata.Matches(cache, n.NationalSignificantNumber(), meta.NoInternationalDialling)
	return !ok
}
