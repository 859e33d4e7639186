package config

import (
	"encoding/json"
	"os"

	"github.com/msb-finance/loancli/internal/flagx"
	"github.com/msb-finance/loancli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Delays
// use timex.Duration so the file can specify them either as strings
// like "800ms" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL              string         `json:"base_url"`
	AdminURL             string         `json:"admin_url"`
	DatabasePath         string         `json:"database_path"`
	LogLevel             string         `json:"log_level"`
	LoanReloadDelay      timex.Duration `json:"loan_reload_delay"`
	DashboardSwitchDelay timex.Duration `json:"dashboard_switch_delay"`
	DocReloadDelay       timex.Duration `json:"doc_reload_delay"`
	RefreshRetries       *uint64        `json:"refresh_retries"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Fields missing from the file keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.AdminURL != "" {
		cfg.AdminURL = jc.AdminURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LoanReloadDelay.Duration != 0 {
		cfg.LoanReloadDelay = jc.LoanReloadDelay.Duration
	}
	if jc.DashboardSwitchDelay.Duration != 0 {
		cfg.DashboardSwitchDelay = jc.DashboardSwitchDelay.Duration
	}
	if jc.DocReloadDelay.Duration != 0 {
		cfg.DocReloadDelay = jc.DocReloadDelay.Duration
	}
	if jc.RefreshRetries != nil {
		cfg.RefreshRetries = *jc.RefreshRetries
	}
}
