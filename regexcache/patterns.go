// Package regexcache holds every regular expression this module needs that
// isn't driven by metadata (those live behind the bounded Cache in cache.go),
// plus the bounded cache itself for the ones that are.
package regexcache

import "regexp"

// Punctuation lists every separator rune (plus their Unicode look-alikes)
// that may appear between digit groups in a pasted phone number, as raw
// regexp-safe hex escapes.
const punctuation = `\-x\x{2010}-\x{2015}\x{2212}\x{FF0D}\x{30FC}` +
	`/\x{FF0F}.\x{FF0E}\[\]()\x{FF08}\x{FF09}~\x{2053}\x{223C}` +
	` \x{00A0}\x{200B}\x{2060}\x{3000}`

var (
	starSign = `\*`
	plusSign = `[+\x{FF0B}]`
)

// ValidPunctuation is exported so other packages (notably aytf) can build
// their own derived patterns without duplicating the separator list.
var ValidPunctuation = punctuation

// ValidPhoneNumber matches either two bare digits, or a (possibly
// plus-prefixed) run of at least 3 digits interleaved with punctuation or a
// star, trailed by any mix of punctuation, star, digits or letters.
var ValidPhoneNumber = regexp.MustCompile(
	`^(?:\d{2}|` +
		plusSign + `?(?:[` + punctuation + starSign + `]*\d){3,}[` + punctuation + starSign + `\d\p{L}]*)$`,
)

// ValidStartChar matches a leading plus-sign or decimal digit.
var ValidStartChar = regexp.MustCompile(`^(?:` + plusSign + `|\d)`)

// FirstValidStartChar finds the first plus-sign or decimal digit anywhere
// in a string, used to drop leading junk before the number itself.
var FirstValidStartChar = regexp.MustCompile(plusSign + `|\d`)

// UnwantedEndChar matches a trailing run of characters that are neither
// letters, digits, nor '#'.
var UnwantedEndChar = regexp.MustCompile(`[^\p{L}\p{Nd}#]+$`)

// CaptureUpToSecondNumberStart chops off an alternate second number that
// follows a slash and an "x", e.g. "(650) 253-0000 / x1234".
var CaptureUpToSecondNumberStart = regexp.MustCompile(`(.*)[\\/] *x`)

// ExtensionPattern has six capturing groups, one per branch, each with its
// own digit-count cap: RFC3966 ";ext="; explicit labels ("ext", "extn",
// "extension", "anexo", full-width variants); ambiguous labels ("x", "#",
// "~", "int"); the American "- N#" hash form; and two auto-dialling forms
// (",," / ";" and comma-only). The first non-empty capture is the extension.
var ExtensionPattern = regexp.MustCompile(
	`(?i)(?:` +
		`;ext=(\d{1,20})` +
		`|[ \x{00A0}\t,]*(?:e?xt(?:ensi(?:o\.?|\x{00F3}n))?|anexo)[:\.\x{FF0E}]?[ \x{00A0}\t,-]*(\d{1,20})#?` +
		`|[ \x{00A0}\t,]*(?:[x#~\x{FF03}]|int)[:\.\x{FF0E}]?[ \x{00A0}\t,-]*(\d{1,9})#?` +
		`|[-](\d{1,6})#` +
		`|(?:[,]{2,}|;)(\d{1,15})#?` +
		`|[,]+(\d{1,9})#` +
		`)$`,
)

// GlobalNumberDigits matches RFC3966 phone-context values that are a
// global-number: a leading '+' followed by digits interleaved with visual
// separators.
var GlobalNumberDigits = regexp.MustCompile(`^\+(?:\d|[-.()])*\d(?:\d|[-.()])*$`)

// DomainName matches RFC3966 phone-context values that are a domain name
// instead of a global number.
var DomainName = regexp.MustCompile(
	`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*` +
		`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.?$`,
)

// PhoneContextValid reports whether an RFC3966 ";phone-context=" value is a
// well-formed global number or domain name.
func PhoneContextValid(s string) bool {
	return GlobalNumberDigits.MatchString(s) || DomainName.MatchString(s)
}

// RFC3966LeadingSeparator matches a leading run of punctuation, stripped
// before an RFC3966-formatted national number is hyphenated.
var RFC3966LeadingSeparator = regexp.MustCompile(`^[` + punctuation + `]+`)

// RFC3966SeparatorRun matches any run of punctuation, collapsed to a single
// "-" when an RFC3966-formatted national number is hyphenated.
var RFC3966SeparatorRun = regexp.MustCompile(`[` + punctuation + `]+`)

// AYTFFormatEligible matches NumberFormat.Format templates that the
// as-you-type formatter may use: punctuation, then "$1", then any mix of
// punctuation and further "$N" placeholders.
var AYTFFormatEligible = regexp.MustCompile(`^[` + punctuation + `]*\$1[` + punctuation + `]*(?:\$\d[` + punctuation + `]*)*$`)
