// Package config loads environment-sourced settings. Listen address,
// database path and log level are flags on the binary; secrets and
// deployment-specific values live here.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment configuration
type Config struct {
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"auxilium_secret"`
	JWTExpiry        time.Duration `env:"JWT_EXPIRY" envDefault:"15m"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET" envDefault:"auxilium_refresh_secret"`
	JWTRefreshExpiry time.Duration `env:"JWT_REFRESH_EXPIRY" envDefault:"720h"`
	SecureCookies    bool          `env:"SECURE_COOKIES" envDefault:"false"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Seed credentials for the first superadmin account. Only used when
	// no superadmin exists yet.
	BootstrapEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`

	// Spreadsheet access. When SheetsDir is set, spreadsheet IDs resolve
	// to xlsx files in that directory instead of the hosted CSV export.
	SheetsBaseURL string `env:"SHEETS_BASE_URL" envDefault:"https://docs.google.com"`
	SheetsDir     string `env:"SHEETS_DIR"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
