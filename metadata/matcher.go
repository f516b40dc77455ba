package metadata

import "github.com/xlab/phonenumber/regexcache"

// LengthResult classifies how a national number's length compares to a
// PhoneNumberDesc's (or the whole number type's) possible lengths.
type LengthResult int

// LengthResults enumerates every LengthResult value.
const (
	LengthInvalidLength LengthResult = iota
	LengthTooShort
	LengthTooLong
	LengthIsPossible
	LengthIsPossibleLocalOnly
)

// TestLength implements the MatcherAPI length check: given the actual
// length of a national number and the set of possible lengths for a number
// type (already resolved via EffectivePossibleLength), classify it.
func TestLength(actualLength int, possibleLengths, possibleLengthsLocalOnly []int) LengthResult {
	if len(possibleLengths) == 1 && possibleLengths[0] == NoParsingLengthSentinel {
		return LengthInvalidLength
	}
	for _, l := range possibleLengthsLocalOnly {
		if l == actualLength {
			return LengthIsPossibleLocalOnly
		}
	}
	if len(possibleLengths) == 0 {
		return LengthInvalidLength
	}
	minLen, maxLen := possibleLengths[0], possibleLengths[0]
	found := false
	for _, l := range possibleLengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
		if l == actualLength {
			found = true
		}
	}
	switch {
	case actualLength < minLen:
		return LengthTooShort
	case actualLength > maxLen:
		return LengthTooLong
	case found:
		return LengthIsPossible
	default:
		return LengthInvalidLength
	}
}

// Matches implements the MatcherAPI pattern check: nationalNumber matches
// desc iff (a) desc's own possible-length list, if non-empty, contains the
// actual length, and (b) nationalNumber fully matches desc's pattern.
func Matches(cache *regexcache.Cache, nationalNumber string, desc *PhoneNumberDesc) (bool, error) {
	if desc == nil || desc.NationalNumberPattern == "" {
		return false, nil
	}
	if len(desc.PossibleLength) > 0 {
		ok := false
		for _, l := range desc.PossibleLength {
			if l == len(nationalNumber) {
				ok = true
				break
			}
		}
		if !ok {
			return false, nil
		}
	}
	re, err := cache.GetOrCompile("(?:" + desc.NationalNumberPattern + ")$")
	if err != nil {
		return false, err
	}
	loc := re.FindStringIndex(nationalNumber)
	return loc != nil && loc[0] == 0, nil
}
