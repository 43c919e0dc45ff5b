package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eieluploader/internal/flagx"
	"github.com/dmitrijs2005/eieluploader/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	EndpointURL  string         `json:"url_adjuntos"`
	Origin       string         `json:"origin"`
	Timeout      timex.Duration `json:"timeout"`
	CleanupGrace timex.Duration `json:"cleanup_grace"`
	JournalPath  string         `json:"journal_path"`
	JournalKeep  int            `json:"journal_keep"`
	LogLevel     string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Keys absent from the file leave the current values untouched.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return nil
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.Origin != "" {
		cfg.Origin = jc.Origin
	}
	if jc.Timeout.Duration > 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.CleanupGrace.Duration > 0 {
		cfg.CleanupGrace = jc.CleanupGrace.Duration
	}
	if jc.JournalPath != "" {
		cfg.JournalPath = jc.JournalPath
	}
	if jc.JournalKeep > 0 {
		cfg.JournalKeep = jc.JournalKeep
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}

	return nil
}
