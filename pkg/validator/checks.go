package validator

import (
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/medisupply/fieldkit/internal/coerce"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional "+", a leading 1-9, then 9 to 14 more digits.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

	// Characters ignored in phone input: spaces, hyphens and parentheses.
	phoneSeparatorRegex = regexp.MustCompile(`[\s\-()]`)

	nitRegex = regexp.MustCompile(`^\d{9,11}$`)

	passwordCharsetRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	lowercaseRegex       = regexp.MustCompile(`[a-z]`)
	uppercaseRegex       = regexp.MustCompile(`[A-Z]`)
	digitRegex           = regexp.MustCompile(`\d`)
)

// Email reports whether v is a string shaped like local@domain.tld.
func Email(v any) bool {
	s, ok := coerce.String(v)
	if !ok {
		return false
	}
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// Phone reports whether v holds 10 to 15 digits (optionally "+"-prefixed, not
// starting with 0) once spaces, hyphens and parentheses are removed.
func Phone(v any) bool {
	s, ok := coerce.String(v)
	if !ok {
		return false
	}
	return phoneRegex.MatchString(phoneSeparatorRegex.ReplaceAllString(s, ""))
}

// NIT reports whether v is a Colombian tax id: 9 to 11 digits, no separators.
func NIT(v any) bool {
	s, ok := coerce.String(v)
	if !ok {
		return false
	}
	return nitRegex.MatchString(strings.TrimSpace(s))
}

// Required reports whether v carries a meaningful value:
//
//   - nil, nil pointers and nil interfaces are empty
//   - strings must be non-blank
//   - numbers must be greater than zero
//   - booleans must be true
//   - slices, arrays and maps must be non-empty
//   - non-nil pointers are judged by the value they point to
//
// Anything else is considered present.
func Required(v any) bool {
	if v == nil {
		return false
	}
	return required(reflect.ValueOf(v))
}

func required(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return required(rv.Elem())
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() > 0
	case reflect.Slice, reflect.Map:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Array:
		return rv.Len() > 0
	case reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// Password reports whether v is at least 8 characters drawn from letters,
// digits and @$!%*?&, with at least one lowercase, one uppercase and one digit.
func Password(v any) bool {
	s, ok := coerce.String(v)
	if !ok {
		return false
	}
	return passwordCharsetRegex.MatchString(s) &&
		lowercaseRegex.MatchString(s) &&
		uppercaseRegex.MatchString(s) &&
		digitRegex.MatchString(s)
}

// Price reports whether v is a number, or numeric string, that is >= 0.
func Price(v any) bool {
	f, ok := coerce.Float(v)
	return ok && f >= 0
}

// Stock reports whether v is a whole number, or numeric string, that is >= 0.
func Stock(v any) bool {
	f, ok := coerce.Float(v)
	return ok && f >= 0 && f == math.Trunc(f)
}

// Date reports whether v is a parseable date string or a non-zero time.Time.
func Date(v any) bool {
	_, ok := coerce.Time(v, false)
	return ok
}

// ExpiryDate reports whether v is a valid date strictly after the current time.
func ExpiryDate(v any) bool {
	return ExpiryDateAt(v, time.Now())
}

// ExpiryDateAt is ExpiryDate with an explicit reference time.
func ExpiryDateAt(v any, now time.Time) bool {
	t, ok := coerce.Time(v, false)
	return ok && t.After(now)
}
