package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eieluploader/internal/flagx"
	"github.com/dmitrijs2005/eieluploader/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations accept "5s" as well as
// integer nanoseconds.
type JsonConfig struct {
	Addr            string         `json:"addr"`
	Dir             string         `json:"dir"`
	AllowOrigins    []string       `json:"allow_origins"`
	MaxBodyBytes    int64          `json:"max_body_bytes"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c or -config. Absent or
// zero fields keep their current value.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.Dir != "" {
		cfg.Dir = c.Dir
	}
	if len(c.AllowOrigins) > 0 {
		cfg.AllowOrigins = c.AllowOrigins
	}
	if c.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = c.MaxBodyBytes
	}
	if c.ShutdownTimeout.Duration > 0 {
		cfg.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}
