package phonenumber

import (
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/regexcache"
)

// submatchStrings turns a FindStringSubmatchIndex result into one string
// per capturing group (empty if that group didn't participate).
func submatchStrings(s string, idxs []int) []string {
	n := len(idxs)/2 - 1
	groups := make([]string, n)
	for i := 1; i <= n; i++ {
		start, end := idxs[2*i], idxs[2*i+1]
		if start >= 0 && end >= 0 {
			groups[i-1] = s[start:end]
		}
	}
	return groups
}

// stripNationalPrefixAndCarrierCode implements spec.md §4.4 step 7. meta's
// national_prefix_for_parsing pattern may contain up to two capturing
// groups: a leading carrier-code group and a trailing group the transform
// rule (if any) consumes. The whole strip is undone whenever it would turn
// a general_desc match into a non-match, or whenever the result's length
// against meta's possible lengths comes out TOO_SHORT, INVALID_LENGTH, or
// IS_POSSIBLE_LOCAL_ONLY.
func stripNationalPrefixAndCarrierCode(cache *regexcache.Cache, remaining string, meta *metadata.PhoneMetadata) (string, string, bool) {
	if meta == nil || meta.NationalPrefixForParsing == "" {
		return remaining, "", false
	}

	re, err := cache.GetOrCompile("^(?:" + meta.NationalPrefixForParsing + ")")
	if err != nil {
		return remaining, "", false
	}
	idxs := re.FindStringSubmatchIndex(remaining)
	if idxs == nil || idxs[0] != 0 || idxs[1] == 0 {
		return remaining, "", false
	}

	groups := submatchStrings(remaining, idxs)
	matchEnd := idxs[1]

	var carrier string
	if len(groups) >= 2 {
		carrier = groups[0]
	}

	var candidateStripped string
	if meta.NationalPrefixTransformRule != "" {
		candidateStripped = expandNumberedGroups(meta.NationalPrefixTransformRule, groups) + remaining[matchEnd:]
	} else {
		candidateStripped = remaining[matchEnd:]
	}

	originalMatches, _ := metadata.Matches(cache, remaining, meta.GeneralDesc)
	strippedMatches, _ := metadata.Matches(cache, candidateStripped, meta.GeneralDesc)
	if originalMatches && !strippedMatches {
		return remaining, "", false
	}

	lengths := meta.GeneralDesc.EffectivePossibleLength(meta.GeneralDesc)
	switch metadata.TestLength(len(candidateStripped), lengths, meta.GeneralDesc.PossibleLengthLocalOnly) {
	case metadata.LengthTooShort, metadata.LengthIsPossibleLocalOnly, metadata.LengthInvalidLength:
		return remaining, "", false
	}

	return candidateStripped, carrier, true
}
