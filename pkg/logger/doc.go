// Package logger builds *slog.Logger values with functional options:
// output format (json or text), level, static attributes, and extractors
// that copy request-scoped values from a context.Context into each record.
//
//	log := logger.New(logger.FromConfig(cfg)...)
//	log.InfoContext(ctx, "order validated", logger.Component("orders"))
//
// WithEnvironment applies per-environment presets; FromConfig layers the
// LOG_LEVEL and LOG_FORMAT overrides from config.App on top.
package logger
