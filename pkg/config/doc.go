// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is loaded once per process (missing file is not an
// error), then the environment is parsed into any annotated Go struct. Each
// configuration type is parsed at most once and cached, so every component
// that loads the same type sees identical values without hidden global
// mutable state — components receive configuration as explicit values.
//
// # Usage
//
//	type EmailConfig struct {
//	    ServerToken string `env:"POSTMARK_SERVER_TOKEN"`
//	    SenderEmail string `env:"SENDER_EMAIL,required"`
//	}
//
//	var cfg EmailConfig
//	if err := config.Load(&cfg); err != nil {
//	    // a required variable is missing or unparsable
//	}
//
// MustLoad panics on failure and is intended for process startup where the
// service cannot run without the configuration in question.
package config
