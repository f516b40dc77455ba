package phonenumber_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phonenumber "github.com/xlab/phonenumber"
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/metadata/fixtures"
	"github.com/xlab/phonenumber/regexcache"
)

func testEnv() (*regexcache.Cache, *metadata.Index) {
	return regexcache.NewCache(regexcache.DefaultCapacity), fixtures.Index()
}

func TestParseUSNationalNumber(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "(650) 253-0000", "US", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
}

func TestParsePlusSignInternational(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "+1 650-253-0000", "ZZ", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
}

func TestParseNZFixedLine(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "033316005", "NZ", false)
	require.NoError(t, err)
	assert.Equal(t, 64, n.CountryCode)
	assert.Equal(t, uint64(33316005), n.NationalNumber)
}

func TestParseCHWithExtension(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "044 668 1800 ext. 123", "CH", false)
	require.NoError(t, err)
	assert.Equal(t, 41, n.CountryCode)
	assert.Equal(t, uint64(446681800), n.NationalNumber)
	assert.Equal(t, "123", n.Extension)
}

func TestParseNonGeographicalEntity(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "+800 1234 5678", "ZZ", false)
	require.NoError(t, err)
	assert.Equal(t, 800, n.CountryCode)
	assert.Equal(t, uint64(12345678), n.NationalNumber)
}

func TestParseRFC3966WithPhoneContext(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "tel:+331-23-45-67-89;phone-context=+33", "ZZ", false)
	require.NoError(t, err)
	assert.Equal(t, 33, n.CountryCode)
	assert.Equal(t, uint64(123456789), n.NationalNumber)
}

func TestParseKeepsRawAndCountryCodeSource(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "+16502530000", "ZZ", true)
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", n.RawInput)
	assert.Equal(t, phonenumber.FromNumberWithPlusSign, n.CountryCodeSource)
}

func TestParseTooShortAfterIDDStripping(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	// "011" is exactly US's international_prefix with nothing left over
	// once it's stripped.
	_, err := phonenumber.ParseWith(cache, idx, "0 11", "US", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, phonenumber.ErrTooShortAfterIDD))
}

func TestParseNotANumber(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	_, err := phonenumber.ParseWith(cache, idx, "abc", "US", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, phonenumber.ErrNotANumber))
}

func TestParseInvalidRegionWithoutPlus(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	_, err := phonenumber.ParseWith(cache, idx, "650 253 0000", "ZZ", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, phonenumber.ErrInvalidCountryCode))
}

func TestParseImplicitCountryCodeFromDefaultRegion(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "16502530000", "US", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
}

func TestParseFoldsVanityLetters(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	n, err := phonenumber.ParseWith(cache, idx, "+1 800 FLOWERS", "ZZ", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(8003569377), n.NationalNumber)
}

func TestParseNormalizationClosure(t *testing.T) {
	t.Parallel()
	cache, idx := testEnv()

	a, err := phonenumber.ParseWith(cache, idx, "+1 (650) 253-0000", "ZZ", false)
	require.NoError(t, err)
	b, err := phonenumber.ParseWith(cache, idx, "+16502530000", "ZZ", false)
	require.NoError(t, err)
	assert.True(t, a.CoreEqual(b))
}
