package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medisupply/fieldkit/pkg/format"
	"github.com/medisupply/fieldkit/pkg/sanitizer"
)

const defaultTruncateLength = 50

// Amounts may be typed the Colombian way ("1.250.000", "1.234,50").
var plainFormatters = map[string]func(string) string{
	"currency":   func(v string) string { return format.Currency(sanitizer.NormalizeDecimal(v)) },
	"number":     func(v string) string { return format.Number(sanitizer.NormalizeDecimal(v)) },
	"date":       func(v string) string { return format.Date(v) },
	"datetime":   func(v string) string { return format.DateTime(v) },
	"phone":      format.Phone,
	"nit":        format.NIT,
	"capitalize": format.CapitalizeFirst,
	"words":      format.CapitalizeWords,
}

var labelKinds = []string{"order-status", "visit-status", "priority"}

func formatKinds() []string {
	kinds := make([]string, 0, len(plainFormatters)+len(labelKinds)+1)
	for kind := range plainFormatters {
		kinds = append(kinds, kind)
	}
	kinds = append(kinds, labelKinds...)
	kinds = append(kinds, "truncate")
	slices.Sort(kinds)
	return kinds
}

func formatCmd() *cobra.Command {
	var (
		maxLength int
		lang      string
	)

	cmd := &cobra.Command{
		Use:       "format <kind> <value>",
		Short:     "Print the display form of a value",
		Long:      "Format a value as one of: " + strings.Join(formatKinds(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: formatKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, value := strings.ToLower(args[0]), args[1]

			var out string
			switch {
			case kind == "truncate":
				out = format.TruncateText(value, maxLength)
			case slices.Contains(labelKinds, kind):
				labeler, err := newLabeler(cmd, lang)
				if err != nil {
					return err
				}
				switch kind {
				case "order-status":
					out = labeler.OrderStatus(value)
				case "visit-status":
					out = labeler.VisitStatus(value)
				default:
					out = labeler.Priority(value)
				}
			default:
				fn, ok := plainFormatters[kind]
				if !ok {
					return fmt.Errorf("unknown kind %q (want one of %s)", args[0], strings.Join(formatKinds(), ", "))
				}
				out = fn(value)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxLength, "max", defaultTruncateLength, "maximum length for truncate")
	cmd.Flags().StringVar(&lang, "lang", "", "label language (default APP_LOCALE)")
	return cmd
}
