package phonenumber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phonenumber "github.com/xlab/phonenumber"
)

func TestIsValidNumberUSFixedLineOrMobile(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "(650) 253-0000", "US", false)
	require.NoError(t, err)

	assert.True(t, phonenumber.IsPossibleNumber(cache, idx, n))
	assert.True(t, phonenumber.IsValidNumber(cache, idx, n))
	// US fixture metadata gives fixed-line and mobile the same pattern.
	assert.Equal(t, phonenumber.FixedLineOrMobile, phonenumber.GetNumberType(cache, idx, n))
}

func TestGetNumberTypeCHFixedLineVsMobile(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	fixedLine, err := phonenumber.ParseWith(cache, idx, "044 668 1800", "CH", false)
	require.NoError(t, err)
	assert.Equal(t, phonenumber.FixedLine, phonenumber.GetNumberType(cache, idx, fixedLine))

	mobile, err := phonenumber.ParseWith(cache, idx, "077 123 45 67", "CH", false)
	require.NoError(t, err)
	assert.Equal(t, phonenumber.Mobile, phonenumber.GetNumberType(cache, idx, mobile))
}

func TestGetNumberTypeNonGeoVoip(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "+800 1234 5678", "ZZ", false)
	require.NoError(t, err)
	assert.Equal(t, phonenumber.Voip, phonenumber.GetNumberType(cache, idx, n))
}

func TestGetNumberTypeUnknownForBadLength(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	// 8 digits is too short to match CH's general_desc (possible length 9).
	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 12345678}
	assert.Equal(t, phonenumber.UnknownType, phonenumber.GetNumberType(cache, idx, n))
	assert.False(t, phonenumber.IsValidNumber(cache, idx, n))
	assert.False(t, phonenumber.IsPossibleNumber(cache, idx, n))
}

func TestIsPossibleNumberAcceptsImplausibleButRightLength(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	// CH general_desc is [2-9]\d{8}: 9 digits starting with 1 is the wrong
	// shape for any concrete type, but still 9 digits long.
	n := phonenumber.PhoneNumber{CountryCode: 41, NationalNumber: 123456789}
	assert.Equal(t, phonenumber.UnknownType, phonenumber.GetNumberType(cache, idx, n))
	assert.True(t, phonenumber.IsPossibleNumber(cache, idx, n))
}

func TestCanBeInternationallyDialledDefaultsTrueWithoutMetadata(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n := phonenumber.PhoneNumber{CountryCode: 999, NationalNumber: 1234567}
	assert.True(t, phonenumber.CanBeInternationallyDialled(cache, idx, n))
}

func TestCanBeInternationallyDialledTrueForOrdinaryNumber(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "(650) 253-0000", "US", false)
	require.NoError(t, err)
	assert.True(t, phonenumber.CanBeInternationallyDialled(cache, idx, n))
}

func TestTestNumberLengthFixedLineOrMobileUnion(t *testing.T) {
	t.Parallel()
	_, idx := testEnv()

	meta, ok := idx.MetadataForRegion("NZ")
	require.True(t, ok)

	// NZ fixed_line possible lengths are {8,9}, mobile {8,9,10}; the union
	// for FIXED_LINE_OR_MOBILE should accept length 10.
	result := phonenumber.TestNumberLength("2123456789", meta, phonenumber.FixedLineOrMobile)
	assert.Equal(t, phonenumber.IsPossible, result)
}

func TestTestNumberLengthTooShort(t *testing.T) {
	t.Parallel()
	_, idx := testEnv()

	meta, ok := idx.MetadataForRegion("CH")
	require.True(t, ok)

	result := phonenumber.TestNumberLength("1234", meta, phonenumber.UnknownType)
	assert.Equal(t, phonenumber.TooShort, result)
}

func TestTestNumberLengthTooLong(t *testing.T) {
	t.Parallel()
	_, idx := testEnv()

	meta, ok := idx.MetadataForRegion("CH")
	require.True(t, ok)

	result := phonenumber.TestNumberLength("123456789012", meta, phonenumber.UnknownType)
	assert.Equal(t, phonenumber.TooLong, result)
}
