package config

import (
	"github.com/caarlos0/env/v11"

	"fundraise-ledger/internal/config/configs"
)

// Config aggregates all configuration sections of the ledger service. Fields
// are populated from environment variables using the caarlos0/env library;
// each nested section is parsed with its envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects where the ledger lives. Environment variables prefixed
	// with STORE_ will populate this struct.
	Store configs.Store `envPrefix:"STORE_"`

	// Chain configures the price feed, the stable token and the custody
	// account. Environment variables prefixed with CHAIN_ will populate this
	// struct.
	Chain configs.Chain `envPrefix:"CHAIN_"`
}

// Load reads configuration from environment variables into a Config.
// Unset variables take their envDefault.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
