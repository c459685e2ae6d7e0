package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CapitalizeWords applies CapitalizeFirst to every space-separated word.
// Runs of spaces are kept, matching a split/join on a single space.
func CapitalizeWords(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = CapitalizeFirst(w)
	}
	return strings.Join(words, " ")
}

// TruncateText cuts s to maxLength runes and appends "..." when it had to
// cut. The result is never longer than maxLength+3 runes. A negative
// maxLength behaves like 0.
func TruncateText(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	maxLength = max(maxLength, 0)
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength]) + "..."
}
