// Package slug derives URL-safe tokens from free-text titles. Slugs feed
// into match identifiers, so the transformation must be deterministic:
// refetching an unchanged event has to reproduce the same ID.
package slug

import (
	"strings"
	"unicode"
)

// Make converts text into a lowercase, hyphen-separated token. Characters
// outside [a-z0-9], whitespace and hyphens are dropped; whitespace and
// hyphen runs collapse to a single hyphen; edge hyphens are trimmed.
// Make is idempotent: Make(Make(x)) == Make(x).
func Make(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		}
	}
	return b.String()
}
