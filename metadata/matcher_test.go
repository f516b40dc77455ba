package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/regexcache"
)

func TestTestLength(t *testing.T) {
	t.Parallel()

	type testcase struct {
		actual    int
		possible  []int
		localOnly []int
		want      metadata.LengthResult
	}
	for name, tc := range map[string]testcase{
		"invalid sentinel":     {5, []int{metadata.NoParsingLengthSentinel}, nil, metadata.LengthInvalidLength},
		"too short":            {7, []int{8, 9}, nil, metadata.LengthTooShort},
		"too long":             {11, []int{8, 9}, nil, metadata.LengthTooLong},
		"in range but invalid": {8, []int{7, 9}, nil, metadata.LengthInvalidLength},
		"possible":             {9, []int{8, 9}, nil, metadata.LengthIsPossible},
		"local only":           {6, []int{8, 9}, []int{6}, metadata.LengthIsPossibleLocalOnly},
		"empty possible list":  {8, nil, nil, metadata.LengthInvalidLength},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := metadata.TestLength(tc.actual, tc.possible, tc.localOnly)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	cache := regexcache.NewCache(8)
	desc := &metadata.PhoneNumberDesc{
		NationalNumberPattern: `4\d{8}`,
		PossibleLength:        []int{9},
	}

	ok, err := metadata.Matches(cache, "446681800", desc)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = metadata.Matches(cache, "746681800", desc)
	require.NoError(t, err)
	assert.False(t, ok, "wrong leading digit")

	ok, err = metadata.Matches(cache, "4466818001", desc)
	require.NoError(t, err)
	assert.False(t, ok, "wrong length is rejected before the pattern even runs")
}

func TestMatchesNilDesc(t *testing.T) {
	t.Parallel()

	cache := regexcache.NewCache(8)
	ok, err := metadata.Matches(cache, "123", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
