package commands

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/medisupply/fieldkit/pkg/format"
	"github.com/medisupply/fieldkit/pkg/logger"
)

func newLabeler(cmd *cobra.Command, lang string) (*format.Labeler, error) {
	if lang == "" {
		lang = cfg.Locale
	}
	labelLog := log.With(logger.Component("labels"))

	labeler, err := format.NewLabeler(cmd.Context(), lang,
		format.WithLogger(labelLog),
		format.WithUnknownCodeLogging(true),
	)
	if err != nil {
		labelLog.Error("label catalog unavailable", slog.String("requested", lang), logger.Error(err))
		return nil, err
	}
	labelLog.Debug("labels resolved", slog.String("requested", lang), logger.Lang(labeler.Language()))
	return labeler, nil
}

func labelsCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print status and priority labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labeler, err := newLabeler(cmd, lang)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "# language: %s\n", labeler.Language())
			for _, code := range format.OrderStatusCodes {
				fmt.Fprintf(w, "order_status\t%s\t%s\n", code, labeler.OrderStatus(code))
			}
			for _, code := range format.VisitStatusCodes {
				fmt.Fprintf(w, "visit_status\t%s\t%s\n", code, labeler.VisitStatus(code))
			}
			for _, code := range format.PriorityCodes {
				fmt.Fprintf(w, "priority\t%s\t%s\n", code, labeler.Priority(code))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "label language (default APP_LOCALE)")
	return cmd
}
