package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisupply/fieldkit/pkg/validator"
)

func TestRuleTranslationKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		key  string
	}{
		{"email", validator.ValidEmail("email", "nope"), "validation.email"},
		{"phone", validator.ValidPhone("phone", "123"), "validation.phone"},
		{"nit", validator.ValidNIT("nit", "12345678"), "validation.nit"},
		{"required", validator.RequiredField("name", " "), "validation.required"},
		{"password", validator.StrongPassword("password", "weak"), "validation.password"},
		{"price", validator.ValidPrice("price", "-1"), "validation.price"},
		{"stock", validator.ValidStock("stock", 1.5), "validation.stock"},
		{"date", validator.ValidDate("visit_date", "31/31/2024"), "validation.date"},
		{"expiry", validator.FutureExpiryDate("expiry", "2001-01-01"), "validation.expiry_date"},
		{"max length", validator.MaxLenString("notes", "abcdef", 3), "validation.max_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(tt.rule)
			require.Error(t, err)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.key, verrs[0].TranslationKey)
			assert.Equal(t, tt.rule.Error.Field, verrs[0].TranslationValues["field"])
			assert.NotEmpty(t, verrs[0].Message)
		})
	}
}

func TestRulesPass(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.ValidEmail("email", "compras@hospital.org.co"),
		validator.ValidPhone("phone", "+57 300 123 4567"),
		validator.ValidNIT("nit", "9001234567"),
		validator.RequiredField("name", "Hospital San José"),
		validator.StrongPassword("password", "Secreto2024"),
		validator.ValidPrice("price", "125000"),
		validator.ValidStock("stock", 40),
		validator.ValidDate("visit_date", "2025-03-10"),
		validator.FutureExpiryDate("expiry", time.Now().Add(24*time.Hour)),
		validator.MaxLenString("notes", "ñandú", 5),
	)
	assert.NoError(t, err)
}

func TestMaxLenString(t *testing.T) {
	t.Parallel()

	rule := validator.MaxLenString("notes", "abc", 2)
	assert.Equal(t, 2, rule.Error.TranslationValues["max"])
	assert.Equal(t, "must be at most 2 characters long", rule.Error.Message)

	assert.Error(t, validator.Apply(validator.MaxLenString("notes", 42, 10)))
}

func TestInList(t *testing.T) {
	t.Parallel()

	codes := []string{"low", "medium", "high", "urgent"}
	assert.NoError(t, validator.Apply(validator.InList("priority", "high", codes)))

	err := validator.Apply(validator.InList("priority", "critical", codes))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.in_list", verrs[0].TranslationKey)
	assert.Equal(t, codes, verrs[0].TranslationValues["allowed_values"])
}
