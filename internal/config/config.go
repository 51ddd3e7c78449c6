// Package config loads CLI configuration from the environment.
//
// A local .env file is honored for development convenience. Outside
// production, missing values fall back to documented defaults; in
// production every required value must be present and startup fails with
// the full list of missing names.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment tags accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Defaults applied outside production.
const (
	DefaultAPIURL  = "http://localhost:3001/api"
	DefaultAppName = "Edu Commerce"
)

// Config holds the externally supplied settings.
type Config struct {
	// APIURL is the base URL of the storefront backend.
	APIURL string `env:"API_URL"`

	// AppName is the display name used in terminal output.
	AppName string `env:"APP_NAME"`

	// Env is the environment tag: development, staging, or production.
	Env string `env:"APP_ENV" envDefault:"development"`

	// HTTPTimeout bounds every backend request.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// IsProduction reports whether the production environment tag is set.
func (c Config) IsProduction() bool { return c.Env == EnvProduction }

// Load reads configuration from the environment, consulting a .env file
// when one exists.
func Load() (Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	if err := c.validate(); err != nil {
		return c, err
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("invalid APP_ENV %q: must be one of %s, %s, %s",
			c.Env, EnvDevelopment, EnvStaging, EnvProduction)
	}

	if !c.IsProduction() {
		return nil
	}

	// Production: collect every missing required name before failing.
	var missing []string
	if c.APIURL == "" {
		missing = append(missing, "API_URL")
	}
	if c.AppName == "" {
		missing = append(missing, "APP_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables:\n%s\n\nPlease check your .env file", strings.Join(missing, "\n"))
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
}
