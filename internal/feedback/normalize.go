package feedback

import "strings"

// Normalize lowercases text and replaces C0/C1 control characters with spaces.
// The result is only suitable for containment checks.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))
}

func isControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}
