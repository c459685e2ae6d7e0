package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/medisupply/fieldkit/pkg/config"
	"github.com/medisupply/fieldkit/pkg/logger"
)

// ErrInvalid is returned by validate when the value fails its rule. The
// failure has already been printed.
var ErrInvalid = errors.New("invalid value")

var (
	envFile string
	cfg     config.App
	log     *slog.Logger
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Output goes to cmd.OutOrStdout so
// callers can capture it with SetOut.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "medisupply",
		Short:         "Validate and format MediSupply field data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := config.LoadEnv(envFile); err != nil {
					return err
				}
				config.ResetCache()
			}
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log = logger.New(append(logger.FromConfig(cfg), logger.WithOutput(cmd.ErrOrStderr()))...)
			logger.SetAsDefault(log)
			log.Debug("configuration loaded",
				slog.String("command", cmd.Name()),
				slog.String("locale", cfg.Locale))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file first")

	root.AddCommand(validateCmd(), formatCmd(), labelsCmd())
	return root
}
