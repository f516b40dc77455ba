package phonenumber

import "strings"

// expandNumberedGroups replaces "$1".."$9" in rule with the corresponding
// entries of groups (1-indexed); a placeholder past the end of groups
// expands to the empty string.
func expandNumberedGroups(rule string, groups []string) string {
	if rule == "" {
		return ""
	}
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

// expandFormatRule expands a NumberFormat.NationalPrefixFormattingRule
// (which may reference $NP for the metadata's national prefix and $FG for
// "$1", the first captured group) into its final form and returns it; the
// caller substitutes the result into the template in place of "$1".
func expandFormatRule(rule, nationalPrefix string) string {
	rule = strings.ReplaceAll(rule, "$NP", nationalPrefix)
	rule = strings.ReplaceAll(rule, "$FG", "$1")
	return rule
}
