package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/medisupply/fieldkit/internal/coerce"
)

// Colombian conventions: "." groups thousands, "," separates decimals.
const (
	groupSeparator   = "."
	decimalSeparator = ","
	currencySymbol   = "$"
)

// Currency renders a peso amount as "$1.234.567,5": up to two fraction
// digits, trailing zeros dropped. Numbers and numeric strings are accepted;
// anything else, including NaN, renders as "$0".
func Currency(v any) string {
	f, ok := coerce.Float(v)
	if !ok {
		return currencySymbol + "0"
	}
	s, neg := localize(f, 2)
	if neg {
		return "-" + currencySymbol + s
	}
	return currencySymbol + s
}

// Number groups thousands with "." and keeps up to three fraction digits.
// Invalid input renders as "0".
func Number(v any) string {
	f, ok := coerce.Float(v)
	if !ok {
		return "0"
	}
	s, neg := localize(f, 3)
	if neg {
		return "-" + s
	}
	return s
}

// localize rounds |f| to at most maxFraction digits and returns the grouped
// representation plus whether a minus sign is needed. Values that round to
// zero are never negative.
func localize(f float64, maxFraction int) (string, bool) {
	neg := f < 0
	raw := strconv.FormatFloat(math.Abs(f), 'f', maxFraction, 64)

	intPart, frac, _ := strings.Cut(raw, ".")
	frac = strings.TrimRight(frac, "0")

	s := groupThousands(intPart)
	if frac != "" {
		s += decimalSeparator + frac
	}
	if s == "0" {
		neg = false
	}
	return s, neg
}

// groupThousands inserts separators into a run of digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(groupSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
