package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares a lookup query for the upstream search:
//   - applies Unicode NFC everywhere except CJK compatibility ideographs,
//     which stay as typed since they select a distinct Korean reading
//   - trims leading/trailing whitespace
//   - compresses inner whitespace runs into a single space
//
// Case is preserved.
func NormalizeQuery(text string) string {
	text = strings.TrimSpace(composeKeepingCompat(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// composeKeepingCompat applies NFC to the runs between compatibility
// ideographs. Those ideographs are starters, so splitting at them does not
// change how the surrounding runs compose.
func composeKeepingCompat(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i, r := range s {
		if !isCompatIdeograph(r) {
			continue
		}
		b.WriteString(norm.NFC.String(s[start:i]))
		b.WriteRune(r)
		start = i + utf8.RuneLen(r)
	}
	b.WriteString(norm.NFC.String(s[start:]))
	return b.String()
}

func isCompatIdeograph(r rune) bool {
	return (r >= 0xF900 && r <= 0xFAFF) || (r >= 0x2F800 && r <= 0x2FA1F)
}
