// Package config loads process configuration from environment variables.
//
// Load parses any struct annotated with `env` tags through
// github.com/caarlos0/env/v11 and caches the result per type, so repeated
// calls are cheap and consistent. The default ./.env file is read once via
// github.com/joho/godotenv before the first parse; LoadEnv loads others.
//
// App is the shared configuration used by cmd/medisupply:
//
//	var cfg config.App
//	config.MustLoad(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
