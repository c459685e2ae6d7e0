package sanitizer

import (
	"regexp"
	"strings"
)

var (
	dotRegex = regexp.MustCompile(`\.+`)

	// "125.000" or "1.250.000": dots used as thousands separators.
	groupedIntegerRegex = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
)

// NormalizeEmail trims and lower-cases an address and collapses repeated
// dots in the local part. Values without exactly one "@" are only trimmed
// and lower-cased so the validator still sees what the user typed.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps digits and a single leading "+". Spaces, dashes and
// parentheses typed by users are dropped.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	digits := KeepDigits(phone)
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	return digits
}

// NormalizeNIT strips the dots and spaces users type when copying a
// formatted NIT but keeps a trailing check digit: "900.123.456-7" becomes
// "9001234567".
func NormalizeNIT(nit string) string {
	return KeepDigits(nit)
}

// NormalizeDecimal rewrites Colombian-formatted numbers into the form
// strconv understands: "1.250.000" -> "1250000", "1.234,50" -> "1234.50",
// "12,5" -> "12.5". Anything else is returned trimmed.
func NormalizeDecimal(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	case groupedIntegerRegex.MatchString(s):
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}
