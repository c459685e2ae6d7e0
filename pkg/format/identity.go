package format

import (
	"regexp"
	"strings"
)

var (
	phoneJunkRegex = regexp.MustCompile(`[^\d+]`)
	nonDigitRegex  = regexp.MustCompile(`\D`)
)

// colombiaCode is the international dialling prefix without "+".
const colombiaCode = "57"

// Phone groups Colombian numbers for display:
//
//	"3001234567"    -> "300 123 4567"
//	"+573001234567" -> "+57 300 123 4567"
//	"573001234567"  -> "+57 300 123 4567"
//
// Input that already contains a space is treated as formatted and returned
// as-is. Other shapes come back stripped of everything but digits and "+".
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	if strings.Contains(phone, " ") {
		return phone
	}

	cleaned := phoneJunkRegex.ReplaceAllString(phone, "")

	switch {
	case len(cleaned) == 13 && strings.HasPrefix(cleaned, "+"+colombiaCode) && isDigits(cleaned[1:]):
		return "+" + colombiaCode + " " + groupPhone(cleaned[3:])
	case len(cleaned) == 12 && strings.HasPrefix(cleaned, colombiaCode) && isDigits(cleaned):
		return "+" + colombiaCode + " " + groupPhone(cleaned[2:])
	case len(cleaned) == 10 && isDigits(cleaned):
		return groupPhone(cleaned)
	}
	return cleaned
}

// groupPhone splits ten digits as XXX XXX XXXX.
func groupPhone(d string) string {
	return d[:3] + " " + d[3:6] + " " + d[6:]
}

// NIT groups a tax id with dots, adding the check-digit dash for ten-digit
// ids: "1234567890" -> "123.456.789-0", "123456789" -> "123.456.789".
// Other lengths are split into threes from the left ("12345678" ->
// "123.456.78"). Input that already contains "." or "-" is returned as-is,
// which makes NIT idempotent.
func NIT(nit string) string {
	if nit == "" {
		return ""
	}
	if strings.ContainsAny(nit, ".-") {
		return nit
	}

	digits := nonDigitRegex.ReplaceAllString(nit, "")
	if len(digits) == 10 {
		return chunkLeft(digits[:9]) + "-" + digits[9:]
	}
	return chunkLeft(digits)
}

// chunkLeft joins three-digit chunks taken from the left with ".".
func chunkLeft(digits string) string {
	chunks := make([]string, 0, len(digits)/3+1)
	for i := 0; i < len(digits); i += 3 {
		chunks = append(chunks, digits[i:min(i+3, len(digits))])
	}
	return strings.Join(chunks, ".")
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
