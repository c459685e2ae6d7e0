package commands

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medisupply/fieldkit/pkg/logger"
	"github.com/medisupply/fieldkit/pkg/sanitizer"
	"github.com/medisupply/fieldkit/pkg/validator"
)

var validateRules = map[string]func(field string, value any) validator.Rule{
	"email":    validator.ValidEmail,
	"phone":    validator.ValidPhone,
	"nit":      validator.ValidNIT,
	"required": validator.RequiredField,
	"password": validator.StrongPassword,
	"price":    validator.ValidPrice,
	"stock":    validator.ValidStock,
	"date":     validator.ValidDate,
	"expiry":   validator.FutureExpiryDate,
}

// Amount rules accept the Colombian notation that format currency accepts.
var decimalRules = map[string]bool{"price": true, "stock": true}

func ruleNames() []string {
	names := make([]string, 0, len(validateRules))
	for name := range validateRules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "validate <rule> <value>",
		Short:     "Check a value against a validation rule",
		Long:      "Check a value against one of: " + strings.Join(ruleNames(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: ruleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := strings.ToLower(args[0]), args[1]
			newRule, ok := validateRules[name]
			if !ok {
				return fmt.Errorf("unknown rule %q (want one of %s)", args[0], strings.Join(ruleNames(), ", "))
			}

			if decimalRules[name] {
				value = sanitizer.NormalizeDecimal(value)
			}

			err := validator.Apply(newRule("value", value))
			verrs := validator.ExtractValidationErrors(err)
			if verrs == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}

			log.Debug("validation failed",
				logger.Component("validate"),
				slog.String("rule", name),
				slog.String("key", verrs[0].TranslationKey),
				logger.Fields(verrs.Fields()))
			fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", verrs[0].Message)
			return ErrInvalid
		},
	}
	return cmd
}
