package validator

import (
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/medisupply/fieldkit/internal/coerce"
)

func newRule(field string, check func() bool, message, key string, extra ...any) Rule {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(extra); i += 2 {
		if k, ok := extra[i].(string); ok {
			values[k] = extra[i+1]
		}
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

func ValidEmail(field string, value any) Rule {
	return newRule(field, func() bool { return Email(value) },
		"must be a valid email address", "validation.email")
}

func ValidPhone(field string, value any) Rule {
	return newRule(field, func() bool { return Phone(value) },
		"must be a valid phone number with 10 to 15 digits", "validation.phone")
}

func ValidNIT(field string, value any) Rule {
	return newRule(field, func() bool { return NIT(value) },
		"must be a NIT of 9 to 11 digits", "validation.nit")
}

func RequiredField(field string, value any) Rule {
	return newRule(field, func() bool { return Required(value) },
		"field is required", "validation.required")
}

func StrongPassword(field string, value any) Rule {
	return newRule(field, func() bool { return Password(value) },
		"must be at least 8 characters with upper and lower case letters and a digit",
		"validation.password", "min_length", 8)
}

func ValidPrice(field string, value any) Rule {
	return newRule(field, func() bool { return Price(value) },
		"must be a number greater than or equal to 0", "validation.price")
}

func ValidStock(field string, value any) Rule {
	return newRule(field, func() bool { return Stock(value) },
		"must be a whole number greater than or equal to 0", "validation.stock")
}

func ValidDate(field string, value any) Rule {
	return newRule(field, func() bool { return Date(value) },
		"must be a valid date", "validation.date")
}

// FutureExpiryDate evaluates against time.Now when Apply runs the rule.
func FutureExpiryDate(field string, value any) Rule {
	return newRule(field, func() bool { return ExpiryDateAt(value, time.Now()) },
		"must be a date in the future", "validation.expiry_date")
}

// MaxLenString counts runes, not bytes. Non-string values fail.
func MaxLenString(field string, value any, max int) Rule {
	return newRule(field, func() bool {
		s, ok := coerce.String(value)
		return ok && utf8.RuneCountInString(s) <= max
	}, fmt.Sprintf("must be at most %d characters long", max), "validation.max_length", "max", max)
}

// InList passes when value equals one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return newRule(field, func() bool { return slices.Contains(allowed, value) },
		fmt.Sprintf("must be one of: %v", allowed), "validation.in_list", "allowed_values", allowed)
}
