// Package norm provides the character-folding tables used to turn free-form
// phone-number text into plain decimal digits before parsing, as described in
// 3GPP-adjacent international numbering conventions rather than any single
// telecom spec: wide-ASCII and Arabic-Indic digits, alpha-vanity letters, and
// the various dash/space look-alikes that show up in pasted numbers all fold
// down to a small ASCII alphabet here.
package norm

// DigitMap folds every decimal digit repertoire accepted by this package
// (ASCII, full-width, Arabic-Indic, Extended Arabic-Indic) down to its ASCII
// digit. Runes outside the four repertoires are absent from the map.
var DigitMap = buildDigitMap()

// AlphaPhoneMap extends DigitMap with the ITU E.161 keypad mapping: letters
// A-Z (either case) fold to the digit of the keypad button they sit on.
var AlphaPhoneMap = buildAlphaPhoneMap()

// DiallableCharMap keeps only the characters a dialler would actually send:
// digits, '+', '*', '#'.
var DiallableCharMap = buildDiallableCharMap()

// GroupingSymbolMap keeps digits (folded to ASCII) and ASCII letters
// (upper-cased), and maps every separator that groups digits visually
// without carrying numeric meaning (and its Unicode look-alikes) to '-'.
var GroupingSymbolMap = buildGroupingSymbolMap()

// PlusChars is the set of runes accepted as a leading plus-sign.
var PlusChars = map[rune]bool{
	'+':    true,
	'＋': true,
}

func buildDigitMap() map[rune]rune {
	m := make(map[rune]rune, 40)
	for d := rune('0'); d <= '9'; d++ {
		m[d] = d
	}
	addRange(m, '０', '９', '0')
	addRange(m, '٠', '٩', '0')
	addRange(m, '۰', '۹', '0')
	return m
}

// addRange folds the rune range [lo,hi] onto ASCII digits starting at base.
func addRange(m map[rune]rune, lo, hi, base rune) {
	for r := lo; r <= hi; r++ {
		m[r] = base + (r - lo)
	}
}

func buildAlphaPhoneMap() map[rune]rune {
	m := make(map[rune]rune, len(DigitMap)+60)
	for k, v := range DigitMap {
		m[k] = v
	}
	groups := []struct {
		letters string
		digit   rune
	}{
		{"ABC", '2'},
		{"DEF", '3'},
		{"GHI", '4'},
		{"JKL", '5'},
		{"MNO", '6'},
		{"PQRS", '7'},
		{"TUV", '8'},
		{"WXYZ", '9'},
	}
	for _, g := range groups {
		for _, l := range g.letters {
			m[l] = g.digit
			m[l+('a'-'A')] = g.digit
		}
	}
	return m
}

func buildDiallableCharMap() map[rune]rune {
	m := make(map[rune]rune, len(DigitMap)+3)
	for k, v := range DigitMap {
		m[k] = v
	}
	m['+'] = '+'
	m['*'] = '*'
	m['#'] = '#'
	return m
}

// groupingSeparators is the canonical set of separator runes (and their
// Unicode look-alikes) that may appear between digit groups.
var groupingSeparators = []rune{
	'-', '‐', '‑', '‒', '–', '—', '―',
	'−', '－', 'ー',
	'/', '／',
	' ', ' ', '​', '⁠', '　',
	'.', '．',
}

func buildGroupingSymbolMap() map[rune]rune {
	m := make(map[rune]rune, len(DigitMap)+90)
	for k, v := range DigitMap {
		m[k] = v
	}
	for r := 'A'; r <= 'Z'; r++ {
		m[r] = r
		m[r+('a'-'A')] = r
	}
	for _, s := range groupingSeparators {
		m[s] = '-'
	}
	return m
}
