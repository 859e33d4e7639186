package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A .env file
// in the working directory is loaded first when present; variables
// already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("LOANCLI_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("LOANCLI_ADMIN_URL"); ok {
		cfg.AdminURL = v
	}
	if v, ok := os.LookupEnv("LOANCLI_DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("LOANCLI_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOANCLI_LOAN_RELOAD_DELAY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LoanReloadDelay = d
		}
	}
	if v, ok := os.LookupEnv("LOANCLI_DASHBOARD_SWITCH_DELAY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DashboardSwitchDelay = d
		}
	}
	if v, ok := os.LookupEnv("LOANCLI_DOC_RELOAD_DELAY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DocReloadDelay = d
		}
	}
	if v, ok := os.LookupEnv("LOANCLI_REFRESH_RETRIES"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.RefreshRetries = n
		}
	}
}
