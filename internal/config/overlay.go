// config/overlay.go
package config

import (
	"os"
	"strings"
)

// ApplyEnv overlays JOBBOERSE_* environment variables (typically loaded
// from .env). The API key is resolved separately by secrets.ResolveAPIKey.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("JOBBOERSE_CSV_PATH")); v != "" {
		cfg.Export.CSVPath = v
	}
	if v := strings.TrimSpace(os.Getenv("JOBBOERSE_DB")); v != "" {
		cfg.Store.Path = v
	}
}
