// Package aytf implements an incremental, per-keystroke phone number
// formatter: feed it one Unicode scalar at a time and it returns the best
// currently-known formatting of everything seen so far. Unlike the rest of
// this module's operations, a Formatter carries mutable session state and
// is not safe for concurrent use.
package aytf

import (
	"strings"
	"unicode/utf8"

	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/norm"
	"github.com/xlab/phonenumber/regexcache"
)

// digitPlaceholder stands in for an as-yet-unfilled digit slot inside a
// formatting template.
const digitPlaceholder = ' '

// phase names the AsYouTypeFormatter state machine's stage. It is kept
// alongside the ableToFormat/inputHasFormatting/isCompleteNumber/
// isExpectingCountryCode booleans, which still drive the per-digit logic;
// the phase itself only decides when the governing region is resolved.
// phaseCollectingDigits is the starting phase; phaseFallback is never
// entered.
type phase int

const (
	phaseCollectingDigits phase = iota
	phaseHaveInternationalPrefix
	phaseHaveCountryCode
	phaseFormattingNational
	phaseFallback
)

// Formatter is the as-you-type session object. Construct one with New for a
// given default region and feed it digits with InputDigit.
type Formatter struct {
	cache        *regexcache.Cache
	idx          *metadata.Index
	defaultRegion string
	defaultMeta  *metadata.PhoneMetadata

	phase phase

	accruedInput              []rune
	accruedInputWithoutFormat strings.Builder
	nationalNumber            strings.Builder

	prefixBeforeNationalNumber string
	extractedNationalPrefix    string

	ableToFormat        bool
	inputHasFormatting  bool
	isCompleteNumber    bool
	isExpectingCountryCode bool

	countryCode int
	currentMeta *metadata.PhoneMetadata

	formattingTemplate       []rune
	lastMatchPosition        int
	currentFormattingPattern string
	possibleFormats          []*metadata.NumberFormat

	shouldAddSpaceAfterNationalPrefix bool

	positionToRemember int
	originalPosition    int
}

// New constructs a Formatter for defaultRegion (a two-letter region code).
// cache and idx are the same regexcache.Cache and metadata.Index the rest
// of the module uses; passing nil idx is valid (every region lookup then
// simply fails and the Formatter falls back to raw passthrough).
func New(cache *regexcache.Cache, idx *metadata.Index, defaultRegion string) *Formatter {
	f := &Formatter{cache: cache, idx: idx, defaultRegion: defaultRegion}
	if idx != nil {
		f.defaultMeta, _ = idx.MetadataForRegion(defaultRegion)
	}
	f.Clear()
	return f
}

// Clear resets the Formatter to its just-constructed state.
func (f *Formatter) Clear() {
	f.phase = phaseCollectingDigits
	f.accruedInput = f.accruedInput[:0]
	f.accruedInputWithoutFormat.Reset()
	f.nationalNumber.Reset()
	f.prefixBeforeNationalNumber = ""
	f.extractedNationalPrefix = ""
	f.ableToFormat = true
	f.inputHasFormatting = false
	f.isCompleteNumber = false
	f.isExpectingCountryCode = false
	f.countryCode = 0
	f.currentMeta = f.defaultMeta
	f.formattingTemplate = nil
	f.lastMatchPosition = 0
	f.currentFormattingPattern = ""
	f.possibleFormats = nil
	f.shouldAddSpaceAfterNationalPrefix = false
	f.positionToRemember = 0
	f.originalPosition = 0
}

// InputDigit feeds one Unicode scalar (a digit, '+', or any other rune the
// caller typed) and returns the best currently-known formatting.
func (f *Formatter) InputDigit(r rune) string {
	out, _ := f.inputDigitWithOptionalRemember(r, false)
	return out
}

// InputDigitAndRememberPosition is InputDigit, but additionally tracks
// where r's digit ends up in the returned string; retrieve it with
// RememberedPosition.
func (f *Formatter) InputDigitAndRememberPosition(r rune) string {
	out, pos := f.inputDigitWithOptionalRemember(r, true)
	f.originalPosition = pos
	return out
}

// RememberedPosition returns the character index, in the string most
// recently returned by InputDigitAndRememberPosition, just past the digit
// that call was tracking.
func (f *Formatter) RememberedPosition() int {
	return f.originalPosition
}

func (f *Formatter) inputDigitWithOptionalRemember(r rune, remember bool) (string, int) {
	f.accruedInput = append(f.accruedInput, r)

	normalized, isDigitOrPlus := normalizeAYTFRune(r)
	if !isDigitOrPlus {
		f.inputHasFormatting = true
	}
	if !f.ableToFormat || f.inputHasFormatting {
		if isDigitOrPlus {
			f.accruedInputWithoutFormat.WriteRune(normalized)
		}
		if remember {
			raw := f.rawAccruedInput()
			return raw, utf8.RuneCountInString(raw)
		}
		return f.rawAccruedInput(), 0
	}
	if !isDigitOrPlus {
		return f.currentOutput(), f.rememberedIndexIn(f.currentOutput())
	}

	f.accruedInputWithoutFormat.WriteRune(normalized)
	var rememberedDigitIndex int
	if remember {
		rememberedDigitIndex = f.accruedInputWithoutFormat.Len()
	}

	out := f.inputDigitHelper(normalized)
	if remember {
		return out, f.translateDigitIndex(rememberedDigitIndex, out)
	}
	return out, 0
}

func (f *Formatter) rawAccruedInput() string {
	return string(f.accruedInput)
}

// normalizeAYTFRune folds the accepted digit/plus repertoire to ASCII,
// reporting whether r was recognized as one of them at all.
func normalizeAYTFRune(r rune) (rune, bool) {
	if norm.IsPlusChar(r) {
		return '+', true
	}
	if mapped, ok := norm.DigitMap[r]; ok {
		return mapped, true
	}
	return r, false
}

// inputDigitHelper runs spec.md §4.7's per-digit algorithm for a rune
// already known to be a digit or '+'.
func (f *Formatter) inputDigitHelper(r rune) string {
	if r == '+' {
		if f.nationalNumber.Len() > 0 {
			// A '+' after digits were already seen is formatting noise; the
			// number as typed is no longer a single clean international
			// number, so fall back for the rest of the session.
			f.ableToFormat = false
			return f.rawAccruedInput()
		}
		f.isCompleteNumber = true
		f.isExpectingCountryCode = true
		f.phase = phaseHaveInternationalPrefix
		f.prefixBeforeNationalNumber = "+"
		return f.currentOutput()
	}

	f.nationalNumber.WriteRune(r)

	if f.isExpectingCountryCode {
		if f.extractCountryCode() {
			f.isExpectingCountryCode = false
			f.phase = phaseHaveCountryCode
		} else {
			return f.currentOutput()
		}
	}

	f.maybeStripNationalPrefix()

	if f.nationalNumber.Len() < 3 {
		return f.currentOutput()
	}

	if f.phase != phaseFormattingNational {
		f.maybeResolveRegion()
		f.phase = phaseFormattingNational
	}

	if len(f.possibleFormats) == 0 {
		f.getAvailableFormats()
	}
	f.narrowDownPossibleFormats()

	rebuilt := false
	if len(f.possibleFormats) > 0 {
		rebuilt = f.maybeCreateNewTemplate()
		f.setShouldAddSpaceAfterNationalPrefix()
	}

	if rebuilt {
		return f.fillTemplateFromAllDigits()
	}
	return f.inputDigitHelperPlaceInTemplate()
}

// maybeStripNationalPrefix implements the NDD-extraction half of spec.md
// §4.7 step 3: once the region governing national-number stripping is
// known and the number isn't already a complete +cc... sequence, consume
// the region's national_prefix_for_parsing from the front of the digits
// typed so far, surfacing it via prefixBeforeNationalNumber/
// extractedNationalPrefix instead of leaving it as part of the national
// number every format pattern has to match against. Runs once per session
// (guarded by extractedNationalPrefix being unset) and declines to strip
// a prefix that would consume every digit typed so far, since a lone "0"
// might still turn out to be the first digit of the national number
// itself once more digits arrive.
func (f *Formatter) maybeStripNationalPrefix() {
	if f.isCompleteNumber || f.extractedNationalPrefix != "" || f.currentMeta == nil {
		return
	}
	pattern := f.currentMeta.NationalPrefixForParsing
	if pattern == "" {
		return
	}
	re, err := f.cache.GetOrCompile("^(?:" + pattern + ")")
	if err != nil {
		return
	}
	digits := f.nationalNumber.String()
	loc := re.FindStringIndex(digits)
	if loc == nil || loc[0] != 0 || loc[1] == 0 || loc[1] == len(digits) {
		return
	}
	prefix := digits[:loc[1]]
	rest := digits[loc[1]:]
	f.extractedNationalPrefix = prefix
	f.prefixBeforeNationalNumber = prefix
	f.nationalNumber.Reset()
	f.nationalNumber.WriteString(rest)
}

// maybeResolveRegion picks the metadata governing national-number
// stripping once 3+ national digits have been seen: the default region
// when we never saw a country code (pure national-number typing), or the
// Index's own disambiguation among the regions sharing the extracted one.
func (f *Formatter) maybeResolveRegion() {
	if f.countryCode == 0 {
		f.currentMeta = f.defaultMeta
		return
	}
	if f.idx == nil {
		return
	}
	regionID := f.idx.RegionForNumber(f.countryCode, f.nationalNumber.String(), nil)
	m, _ := f.idx.MetadataForRegionOrCallingCode(f.countryCode, regionID)
	if m != nil {
		f.currentMeta = m
	}
}

// extractCountryCode consumes leading digits of f.nationalNumber against the
// known country-code set, longest-prefix first (kMaxLengthCountryCode = 3).
// It returns true once a country code has been read, or when there is no
// Index or no leading '+' (then the default region's code, if any, is
// adopted with nothing stripped), matching the "fully read" condition step 3
// of spec.md §4.7 waits on. After a leading '+' it returns false while fewer
// than 3 digits have been typed and whenever none of the first 3 digits'
// prefixes is a known country code.
func (f *Formatter) extractCountryCode() bool {
	digits := f.nationalNumber.String()
	if f.idx == nil {
		f.countryCode = 0
		return true
	}
	max := 3
	if len(digits) < max {
		if f.isCompleteNumber && len(digits) < 3 {
			return false
		}
		max = len(digits)
	}
	for n := max; n >= 1; n-- {
		prefix := digits[:n]
		cc, ok := atoiDigits(prefix)
		if !ok {
			continue
		}
		if f.idx.CountryCodeExists(cc) {
			f.countryCode = cc
			f.nationalNumber.Reset()
			f.nationalNumber.WriteString(digits[n:])
			f.prefixBeforeNationalNumber += prefix + " "
			return true
		}
	}
	if !f.isCompleteNumber {
		// Pure national-number typing (no leading '+'): the default
		// region's own country code governs, with nothing stripped.
		if f.defaultMeta != nil {
			f.countryCode = f.defaultMeta.CountryCode
		}
		return true
	}
	return false
}

func atoiDigits(s string) (int, bool) {
	v := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + int(r-'0')
	}
	return v, true
}

// getAvailableFormats implements spec.md §4.7 step 4: filter currentMeta's
// format list (Intl when is_complete_number, domestic otherwise, mirroring
// the static Formatter's own INTERNATIONAL/NATIONAL choice) to entries the
// as-you-type engine can drive at all, and whose leading-digits pattern
// fits what's typed so far.
func (f *Formatter) getAvailableFormats() {
	if f.currentMeta == nil {
		return
	}
	formats := f.currentMeta.NumberFormats
	if f.isCompleteNumber && len(f.currentMeta.IntlNumberFormats) > 0 {
		formats = f.currentMeta.IntlNumberFormats
	}
	digits := f.nationalNumber.String()
	var out []*metadata.NumberFormat
	for _, fmt := range formats {
		if !regexcache.AYTFFormatEligible.MatchString(fmt.Format) {
			continue
		}
		if len(fmt.LeadingDigitsPattern) > 0 && !leadingDigitsPartialMatch(f.cache, fmt.LeadingDigitsPattern[len(fmt.LeadingDigitsPattern)-1], digits) {
			continue
		}
		out = append(out, fmt)
	}
	f.possibleFormats = out
}

// narrowDownPossibleFormats implements spec.md §4.7 step 5.
func (f *Formatter) narrowDownPossibleFormats() {
	if len(f.possibleFormats) == 0 {
		return
	}
	digits := f.nationalNumber.String()
	kept := f.possibleFormats[:0:0]
	for _, fmt := range f.possibleFormats {
		if len(fmt.LeadingDigitsPattern) == 0 {
			kept = append(kept, fmt)
			continue
		}
		if leadingDigitsPartialMatch(f.cache, fmt.LeadingDigitsPattern[len(fmt.LeadingDigitsPattern)-1], digits) {
			kept = append(kept, fmt)
		}
	}
	f.possibleFormats = kept
}

func leadingDigitsPartialMatch(cache *regexcache.Cache, pattern, digits string) bool {
	re, err := cache.GetOrCompile("^(?:" + pattern + ")")
	if err != nil {
		return false
	}
	loc := re.FindStringIndex(digits)
	return loc != nil && loc[0] == 0
}

// maybeCreateNewTemplate implements spec.md §4.7 step 6: walk
// possibleFormats in order and take the first one for which buildTemplate
// succeeds (its template sized to the shortest digit run, at least as long
// as the digits typed so far, that its pattern fully matches), rebuilding
// formattingTemplate when the chosen pattern changes. Formats are not
// compared by template length; the walk stops at the current pattern. Reports whether a new template was actually built, so the
// caller knows to re-place every digit typed so far instead of just the
// latest one.
func (f *Formatter) maybeCreateNewTemplate() bool {
	digits := f.nationalNumber.String()
	for _, fmt := range f.possibleFormats {
		if fmt.Pattern == f.currentFormattingPattern {
			return false
		}
		template, ok := buildTemplate(f.cache, fmt, len(digits))
		if !ok {
			continue
		}
		f.currentFormattingPattern = fmt.Pattern
		f.formattingTemplate = template
		f.lastMatchPosition = 0
		return true
	}
	return false
}

// fillTemplateFromAllDigits places every digit currently in nationalNumber
// into a just-(re)built formattingTemplate, starting over from position 0.
// Needed whenever maybeCreateNewTemplate swaps in a new template: digits
// typed before this template existed still need a home in it, not just the
// one digit that happened to trigger the rebuild.
func (f *Formatter) fillTemplateFromAllDigits() string {
	f.lastMatchPosition = 0
	digits := f.nationalNumber.String()
	pos := 0
	for i := 0; i < len(digits); i++ {
		placed := false
		for ; pos < len(f.formattingTemplate); pos++ {
			if f.formattingTemplate[pos] == digitPlaceholder {
				f.formattingTemplate[pos] = rune(digits[i])
				pos++
				f.lastMatchPosition = pos
				placed = true
				break
			}
		}
		if !placed {
			f.ableToFormat = f.ableToExtractLongerNDD()
			if !f.ableToFormat {
				return f.rawAccruedInput()
			}
			break
		}
	}
	return f.currentOutput()
}

// buildTemplate expands fmt.Format against a placeholder-filled national
// number long enough to satisfy fmt.Pattern, one digit at a time, stopping
// as soon as the pattern matches — so the template is exactly as long as
// the format needs, never longer.
func buildTemplate(cache *regexcache.Cache, fmt *metadata.NumberFormat, minDigits int) ([]rune, bool) {
	patRe, err := cache.GetOrCompile("^(?:" + fmt.Pattern + ")$")
	if err != nil {
		return nil, false
	}
	digitCount := minDigits
	if digitCount < 1 {
		digitCount = 1
	}
	for tries := 0; tries < 20; tries++ {
		candidate := strings.Repeat("9", digitCount)
		if patRe.MatchString(candidate) {
			idxs := patRe.FindStringSubmatchIndex(candidate)
			groups := make([]string, len(idxs)/2-1)
			placeholders := make([]string, len(groups))
			for i := range groups {
				s, e := idxs[2*(i+1)], idxs[2*(i+1)+1]
				if s < 0 {
					continue
				}
				placeholders[i] = strings.Repeat(string(digitPlaceholder), e-s)
			}
			rendered := expandTemplateGroups(fmt.Format, placeholders)
			return []rune(rendered), true
		}
		digitCount++
	}
	return nil, false
}

func expandTemplateGroups(rule string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(rule); i++ {
		c := rule[i]
		if c == '$' && i+1 < len(rule) && rule[i+1] >= '1' && rule[i+1] <= '9' {
			n := int(rule[i+1] - '1')
			if n < len(groups) {
				b.WriteString(groups[n])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// setShouldAddSpaceAfterNationalPrefix implements spec.md §4.7 step 6's
// last clause.
func (f *Formatter) setShouldAddSpaceAfterNationalPrefix() {
	if f.currentMeta == nil || len(f.possibleFormats) == 0 {
		f.shouldAddSpaceAfterNationalPrefix = false
		return
	}
	rule := f.possibleFormats[0].NationalPrefixFormattingRule
	f.shouldAddSpaceAfterNationalPrefix = strings.HasSuffix(strings.TrimSuffix(rule, "$1"), " ") ||
		strings.Contains(rule, "$NP") && strings.HasSuffix(rule, " $FG")
}

// inputDigitHelperPlaceInTemplate implements spec.md §4.7 steps 7-8: drop
// the most recent digit into the next placeholder slot, falling back to
// raw passthrough if the template has no room left for it.
func (f *Formatter) inputDigitHelperPlaceInTemplate() string {
	if len(f.formattingTemplate) == 0 {
		return f.currentOutput()
	}

	digits := f.nationalNumber.String()
	lastDigit := digits[len(digits)-1]

	for i := f.lastMatchPosition; i < len(f.formattingTemplate); i++ {
		if f.formattingTemplate[i] == digitPlaceholder {
			f.formattingTemplate[i] = rune(lastDigit)
			f.lastMatchPosition = i + 1
			return f.currentOutput()
		}
	}

	f.ableToFormat = f.ableToExtractLongerNDD()
	if !f.ableToFormat {
		return f.rawAccruedInput()
	}
	return f.currentOutput()
}

// ableToExtractLongerNDD implements spec.md §4.7 step 9: once the chosen
// template has run out of room, see whether re-extracting a (possibly
// longer) national prefix lets formatting continue; this module's fixture
// metadata never nests prefixes, so this conservatively reports failure
// rather than guessing at a resplit.
func (f *Formatter) ableToExtractLongerNDD() bool {
	return false
}

// currentOutput renders prefixBeforeNationalNumber (with a following space
// when applicable) plus the template filled in so far, or the raw digits
// once no template has been chosen yet.
func (f *Formatter) currentOutput() string {
	prefix := f.prefixBeforeNationalNumber
	if prefix != "" && f.shouldAddSpaceAfterNationalPrefix && !strings.HasSuffix(prefix, " ") {
		prefix += " "
	}

	if len(f.formattingTemplate) == 0 {
		return prefix + f.nationalNumber.String()
	}

	end := f.lastMatchPosition
	if end == 0 {
		end = len(f.formattingTemplate)
		for i, r := range f.formattingTemplate {
			if r == digitPlaceholder {
				end = i
				break
			}
		}
	}
	rendered := string(f.formattingTemplate[:end])
	return prefix + rendered
}

func (f *Formatter) rememberedIndexIn(output string) int {
	return utf8.RuneCountInString(output)
}

// translateDigitIndex maps a count of digits/plus typed so far back into a
// character index within out, per spec.md §4.7's "remembered position".
func (f *Formatter) translateDigitIndex(digitIndex int, out string) int {
	seen := 0
	for i, r := range out {
		if r == digitPlaceholder {
			continue
		}
		if (r >= '0' && r <= '9') || r == '+' {
			seen++
			if seen == digitIndex {
				return i + len(string(r))
			}
		}
	}
	return len([]rune(out))
}
