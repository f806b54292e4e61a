// Package slug derives URL-safe identifiers from display names and titles.
package slug

import (
	"strings"
)

// Generate converts a title or name into a lowercase, hyphen-separated slug.
//
// Rules:
//  1. Lowercase everything.
//  2. Drop every character outside [a-z0-9 -].
//  3. Collapse whitespace runs to a single hyphen.
//  4. Collapse hyphen runs to a single hyphen.
//  5. Trim leading and trailing hyphens.
//
// Pure and total; input with no alphanumeric content yields "".
func Generate(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastWasHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasHyphen = false
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '-':
			if !lastWasHyphen {
				b.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
