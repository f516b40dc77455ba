// Package fixtures provides a small, hand-built set of PhoneMetadata records
// covering a handful of regions (US, NZ, CH, FR, and the "001" non-geo
// entity) along with a non-geographical global-network entry. It exists
// because the real compiled-in metadata blob is an out-of-scope external
// collaborator (spec.md §4.3): every other package's tests build their
// world from here instead of depending on a real-world data file this
// module never loads.
package fixtures

import "github.com/xlab/phonenumber/metadata"

// Index builds a fresh metadata.Index from Metadatas. A fresh Index is
// returned on every call so tests can't accidentally observe mutation from
// another test (metadata.Index itself is immutable, but callers are free to
// treat this as "construct your own fixture world").
func Index() *metadata.Index {
	return metadata.NewIndex(Metadatas())
}

// Metadatas returns the raw fixture records, for tests that want to tweak
// one before building an Index.
func Metadatas() []*metadata.PhoneMetadata {
	return []*metadata.PhoneMetadata{us(), nz(), ch(), fr(), nonGeo800()}
}

func us() *metadata.PhoneMetadata {
	general := &metadata.PhoneNumberDesc{
		NationalNumberPattern: `[2-9]\d{9}`,
		PossibleLength:        []int{10},
	}
	return &metadata.PhoneMetadata{
		ID:                            "US",
		CountryCode:                   1,
		MainCountryForCode:            true,
		InternationalPrefix:           "011",
		NationalPrefix:                "1",
		NationalPrefixForParsing:      "1",
		SameMobileAndFixedLinePattern: true,
		GeneralDesc:                   general,
		FixedLine:                     general,
		Mobile:                        general,
		NumberFormats: []*metadata.NumberFormat{{
			Pattern: `(\d{3})(\d{3})(\d{4})`,
			Format:  "($1) $2-$3",
		}},
		IntlNumberFormats: []*metadata.NumberFormat{{
			Pattern: `(\d{3})(\d{3})(\d{4})`,
			Format:  "$1-$2-$3",
		}},
	}
}

func nz() *metadata.PhoneMetadata {
	general := &metadata.PhoneNumberDesc{
		NationalNumberPattern: `[2-9]\d{7,9}`,
		PossibleLength:        []int{8, 9, 10},
	}
	return &metadata.PhoneMetadata{
		ID:                       "NZ",
		CountryCode:              64,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		GeneralDesc:              general,
		FixedLine: &metadata.PhoneNumberDesc{
			NationalNumberPattern: `[34679]\d{7,8}`,
			PossibleLength:        []int{8, 9},
		},
		Mobile: &metadata.PhoneNumberDesc{
			NationalNumberPattern: `2\d{7,9}`,
			PossibleLength:        []int{8, 9, 10},
		},
		NumberFormats: []*metadata.NumberFormat{{
			Pattern:                     `(\d{2})(\d{3})(\d{3})`,
			Format:                      "$1 $2 $3",
			NationalPrefixFormattingRule: "0$1",
		}},
	}
}

func ch() *metadata.PhoneMetadata {
	general := &metadata.PhoneNumberDesc{
		NationalNumberPattern: `[2-9]\d{8}`,
		PossibleLength:        []int{9},
	}
	return &metadata.PhoneMetadata{
		ID:                       "CH",
		CountryCode:              41,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		GeneralDesc:              general,
		FixedLine: &metadata.PhoneNumberDesc{
			NationalNumberPattern: `4\d{8}`,
			PossibleLength:        []int{9},
		},
		Mobile: &metadata.PhoneNumberDesc{
			NationalNumberPattern: `7\d{8}`,
			PossibleLength:        []int{9},
		},
		NumberFormats: []*metadata.NumberFormat{{
			Pattern:                     `(\d{2})(\d{3})(\d{2})(\d{2})`,
			Format:                      "$1 $2 $3 $4",
			NationalPrefixFormattingRule: "0$1",
		}},
		IntlNumberFormats: []*metadata.NumberFormat{{
			Pattern: `(\d{2})(\d{3})(\d{4})`,
			Format:  "$1 $2 $3",
		}},
	}
}

func fr() *metadata.PhoneMetadata {
	general := &metadata.PhoneNumberDesc{
		NationalNumberPattern: `[1-9]\d{8}`,
		PossibleLength:        []int{9},
	}
	return &metadata.PhoneMetadata{
		ID:                       "FR",
		CountryCode:              33,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		GeneralDesc:              general,
		FixedLine: &metadata.PhoneNumberDesc{
			NationalNumberPattern: `[1-5]\d{8}`,
			PossibleLength:        []int{9},
		},
		Mobile: &metadata.PhoneNumberDesc{
			NationalNumberPattern: `[67]\d{8}`,
			PossibleLength:        []int{9},
		},
		NumberFormats: []*metadata.NumberFormat{{
			Pattern:                     `(\d{1})(\d{2})(\d{2})(\d{2})(\d{2})`,
			Format:                      "$1 $2 $3 $4 $5",
			NationalPrefixFormattingRule: "0$1",
		}},
	}
}

func nonGeo800() *metadata.PhoneMetadata {
	general := &metadata.PhoneNumberDesc{
		NationalNumberPattern: `\d{8}`,
		PossibleLength:        []int{8},
	}
	return &metadata.PhoneMetadata{
		ID:                  metadata.RegionCodeForNonGeoEntity,
		CountryCode:         800,
		InternationalPrefix: "00",
		GeneralDesc:         general,
		Voip:                general,
		NumberFormats: []*metadata.NumberFormat{{
			Pattern: `(\d{4})(\d{4})`,
			Format:  "$1 $2",
		}},
	}
}
