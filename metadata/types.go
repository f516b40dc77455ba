// Package metadata holds the immutable, process-wide numbering-plan data
// this module runs on: one PhoneMetadata record per ITU region or
// non-geographical "global network" calling code, indexed for the lookups
// the parser, validator, and formatter need. Metadata is loaded once (see
// loader.go) and never mutated afterward, so an *Index may be shared freely
// across goroutines once built.
package metadata

// RegionCodeForNonGeoEntity is the sentinel region id used for
// non-geographical entities (ITU global-network calling codes such as 800,
// 808, 882).
const RegionCodeForNonGeoEntity = "001"

// NoParsingLengthSentinel marks a PhoneNumberDesc whose PossibleLength is
// exactly []int{NoParsingLengthSentinel}, meaning "no numbers of this type
// exist" rather than "any length is possible".
const NoParsingLengthSentinel = -1

// PhoneNumberDesc describes one number type (fixed-line, mobile, ...) within
// a region: the pattern its national significant number must match, and the
// lengths such a number may legitimately have.
type PhoneNumberDesc struct {
	NationalNumberPattern   string
	PossibleLength          []int
	PossibleLengthLocalOnly []int
}

// EffectivePossibleLength returns d's own PossibleLength, or general's when
// d's is empty — the inheritance rule from spec.md §3.
func (d *PhoneNumberDesc) EffectivePossibleLength(general *PhoneNumberDesc) []int {
	if d != nil && len(d.PossibleLength) > 0 {
		return d.PossibleLength
	}
	if general != nil {
		return general.PossibleLength
	}
	return nil
}

// NumberFormat is one way of rendering a national significant number: a
// pattern identifying which numbers it applies to, a $1/$2/... template, and
// the national-prefix/carrier-code formatting rules layered on top.
type NumberFormat struct {
	Pattern                           string
	Format                            string
	LeadingDigitsPattern              []string
	NationalPrefixFormattingRule      string
	DomesticCarrierCodeFormattingRule string
}

// PhoneMetadata is one region's (or non-geographical entity's) complete
// numbering plan.
type PhoneMetadata struct {
	ID                  string // two-letter region code, or RegionCodeForNonGeoEntity
	CountryCode         int
	MainCountryForCode  bool

	InternationalPrefix          string
	PreferredInternationalPrefix string
	NationalPrefix               string
	NationalPrefixForParsing     string
	NationalPrefixTransformRule  string
	PreferredExtnPrefix          string

	LeadingDigits string

	SameMobileAndFixedLinePattern bool

	NumberFormats     []*NumberFormat
	IntlNumberFormats []*NumberFormat

	GeneralDesc             *PhoneNumberDesc
	FixedLine               *PhoneNumberDesc
	Mobile                  *PhoneNumberDesc
	TollFree                *PhoneNumberDesc
	PremiumRate             *PhoneNumberDesc
	SharedCost              *PhoneNumberDesc
	Voip                    *PhoneNumberDesc
	PersonalNumber          *PhoneNumberDesc
	Pager                   *PhoneNumberDesc
	Uan                     *PhoneNumberDesc
	Voicemail               *PhoneNumberDesc
	NoInternationalDialling *PhoneNumberDesc
}

// IsNonGeographical reports whether m describes a "001" global-network
// entity rather than a two-letter region.
func (m *PhoneMetadata) IsNonGeographical() bool {
	return m.ID == RegionCodeForNonGeoEntity
}
