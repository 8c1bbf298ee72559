package polingo

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the Translator settings that deployments commonly set from
// the environment. Programmatic construction can use New with options
// directly; Config exists for the twelve-factor path.
type Config struct {
	// Locale is the initially active locale, e.g. "es".
	Locale string `env:"POLINGO_LOCALE,notEmpty"`

	// Fallback is consulted when the active locale lacks a translation.
	Fallback string `env:"POLINGO_FALLBACK"`

	// Domain partitions catalogs per locale, e.g. "messages" or "errors".
	Domain string `env:"POLINGO_DOMAIN" envDefault:"messages"`

	// Debug enables logging of catalog loads and literal-fallback misses.
	Debug bool `env:"POLINGO_DEBUG" envDefault:"false"`
}

// ConfigFromEnv reads Config from POLINGO_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("polingo: parsing environment: %w", err)
	}
	return cfg, nil
}

// Options expands the config into functional options for New.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 3)

	if c.Fallback != "" {
		opts = append(opts, WithFallback(c.Fallback))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.Debug {
		opts = append(opts, WithDebug())
	}

	return opts
}
