// Package config handles configuration for the loan client, including
// defaults, JSON overlay, environment overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the loan client CLI.
//
// Fields:
//   - BaseURL: root of the loan service REST API.
//   - AdminURL: the admin console users with the admin role are sent to.
//   - DatabasePath: sqlite file holding the persisted session.
//   - LogLevel: diagnostic log level (debug|info|warn|error).
//   - LoanReloadDelay: pause before the loan list reloads after a
//     successful application.
//   - DashboardSwitchDelay: pause before the dashboard screen is shown
//     after a successful application.
//   - DocReloadDelay: pause before the document list reloads after an
//     upload.
//   - RefreshRetries: transport-failure retries for background list
//     refreshes.
type Config struct {
	BaseURL              string
	AdminURL             string
	DatabasePath         string
	LogLevel             string
	LoanReloadDelay      time.Duration
	DashboardSwitchDelay time.Duration
	DocReloadDelay       time.Duration
	RefreshRetries       uint64
}

// LoadDefaults populates c with the production defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://msb-finance.onrender.com/api"
	c.AdminURL = "https://msb-finance.onrender.com/admin/admin.html"
	c.DatabasePath = "loancli.db"
	c.LogLevel = "error"
	c.LoanReloadDelay = 800 * time.Millisecond
	c.DashboardSwitchDelay = 1200 * time.Millisecond
	c.DocReloadDelay = 700 * time.Millisecond
	c.RefreshRetries = 2
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
