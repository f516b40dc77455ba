package regexcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhoneNumber(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"+1 650-253-0000", "033316005", "12", "6502530000", "044-668-1800x123"} {
		assert.Truef(t, ValidPhoneNumber.MatchString(ok), "expected %q to be viable", ok)
	}
	for _, bad := range []string{"", "a", "1", "++12"} {
		assert.Falsef(t, ValidPhoneNumber.MatchString(bad), "expected %q to not be viable", bad)
	}
}

func TestValidStartChar(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidStartChar.MatchString("+1 650"))
	assert.True(t, ValidStartChar.MatchString("650"))
	assert.False(t, ValidStartChar.MatchString("x650"))
}

func TestUnwantedEndChar(t *testing.T) {
	t.Parallel()

	loc := UnwantedEndChar.FindStringIndex("650-253-0000;;;")
	if assert.NotNil(t, loc) {
		assert.Equal(t, "650-253-0000", "650-253-0000;;;"[:loc[0]])
	}
}

func TestCaptureUpToSecondNumberStart(t *testing.T) {
	t.Parallel()

	m := CaptureUpToSecondNumberStart.FindStringSubmatch("650-253-0000 / x1234")
	if assert.NotNil(t, m) {
		assert.Equal(t, "650-253-0000 ", m[1])
	}
}

func TestExtensionPattern(t *testing.T) {
	t.Parallel()

	type testcase struct {
		in   string
		want string
	}
	for name, tc := range map[string]testcase{
		"rfc3966":  {"650 253 0000;ext=123", "123"},
		"explicit": {"044-668-1800 ext. 123", "123"},
		"x form":   {"650 253 0000 x123", "123"},
		"hash":     {"650 253 0000-123#", "123"},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := ExtensionPattern.FindStringSubmatch(tc.in)
			if !assert.NotNil(t, m, "expected a match") {
				return
			}
			found := ""
			for _, g := range m[1:] {
				if g != "" {
					found = g
					break
				}
			}
			assert.Equal(t, tc.want, found)
		})
	}
}

func TestPhoneContextValid(t *testing.T) {
	t.Parallel()

	assert.True(t, PhoneContextValid("+33"))
	assert.True(t, PhoneContextValid("example.com"))
	assert.False(t, PhoneContextValid("+"))
}

func TestAYTFFormatEligible(t *testing.T) {
	t.Parallel()

	assert.True(t, AYTFFormatEligible.MatchString("$1-$2-$3"))
	assert.False(t, AYTFFormatEligible.MatchString("0$1 $2"))
}
