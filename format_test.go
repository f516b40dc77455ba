package phonenumber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	phonenumber "github.com/xlab/phonenumber"
	"github.com/xlab/phonenumber/metadata"
)

func TestFormatUSAllStyles(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}

	assert.Equal(t, "+16502530000", phonenumber.Format(cache, idx, n, phonenumber.E164))
	assert.Equal(t, "(650) 253-0000", phonenumber.Format(cache, idx, n, phonenumber.NATIONAL))
	assert.Equal(t, "+1 650-253-0000", phonenumber.Format(cache, idx, n, phonenumber.INTERNATIONAL))
	assert.Equal(t, "tel:+1-650-253-0000", phonenumber.Format(cache, idx, n, phonenumber.RFC3966))
}

func TestFormatCHAppliesNationalPrefixFormattingRule(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 446681800}
	assert.Equal(t, "044 668 18 00", phonenumber.Format(cache, idx, n, phonenumber.NATIONAL))
}

func TestFormatNZAppliesNationalPrefixFormattingRule(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	assert.Equal(t, "033 316 005", phonenumber.Format(cache, idx, n, phonenumber.NATIONAL))
}

func TestFormatWithExtension(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 446681800, Extension: "123"}
	assert.Equal(t, "044 668 18 00 ext. 123", phonenumber.Format(cache, idx, n, phonenumber.NATIONAL))
}

func TestFormatOutOfCountryCallingNumberNANPA(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	out := phonenumber.FormatOutOfCountryCallingNumber(cache, idx, n, "US")
	assert.Equal(t, "1 (650) 253-0000", out)
}

func TestFormatOutOfCountryCallingNumberSameCountryCode(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 446681800}
	out := phonenumber.FormatOutOfCountryCallingNumber(cache, idx, n, "CH")
	assert.Equal(t, "044 668 18 00", out)
}

func TestFormatOutOfCountryCallingNumberCrossRegion(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 446681800}
	out := phonenumber.FormatOutOfCountryCallingNumber(cache, idx, n, "FR")
	assert.Equal(t, "00 41 44 668 1800", out)
}

func TestFormatByPatternCustomFormat(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 6502530000}
	userFormats := []*metadata.NumberFormat{{
		Pattern: `(\d{3})(\d{3})(\d{4})`,
		Format:  "$1.$2.$3",
	}}

	out := phonenumber.FormatByPattern(cache, idx, n, phonenumber.NATIONAL, userFormats)
	assert.Equal(t, "650.253.0000", out)
}

func TestTruncateTooLongNumberDropsTrailingDigits(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	// CH general_desc wants exactly 9 digits; this one has 10.
	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 4466818000}

	truncated, ok := phonenumber.TruncateTooLongNumber(cache, idx, n)
	assert.True(t, ok)
	assert.Equal(t, uint64(446681800), truncated.NationalNumber)
	assert.True(t, phonenumber.IsValidNumber(cache, idx, truncated))
}

func TestTruncateTooLongNumberGivesUpWhenAlreadyShort(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 4}

	_, ok := phonenumber.TruncateTooLongNumber(cache, idx, n)
	assert.False(t, ok)
}
