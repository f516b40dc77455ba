package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDigits(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a"))
	assert.False(t, IsDigits("+12"))
}

func TestParseUint64(t *testing.T) {
	t.Parallel()

	v, err := ParseUint64("6502530000")
	require.NoError(t, err)
	assert.EqualValues(t, 6502530000, v)

	_, err = ParseUint64("12a")
	assert.ErrorIs(t, err, ErrNotDigits)
}

func TestCountLeadingZeros(t *testing.T) {
	t.Parallel()

	type testcase struct {
		in   string
		want int
	}
	for name, tc := range map[string]testcase{
		"no zeros":          {"123", 0},
		"one leading zero":  {"0123", 1},
		"many leading":      {"000123", 3},
		"solitary zero":     {"0", 0},
		"all zeros":         {"000", 2},
		"single leading":    {"0", 0},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CountLeadingZeros(tc.in))
		})
	}
}
