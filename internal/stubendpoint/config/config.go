// Package config handles configuration for the stub endpoint, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the stub form receiver.
//
// Fields:
//   - Addr: HTTP bind address.
//   - Dir: directory received files are written under.
//   - AllowOrigins: origins granted CORS read access. Entries may be exact
//     origins or "*.example.com" subdomain wildcards. Empty means responses
//     stay opaque to every cross-origin caller.
//   - MaxBodyBytes: upper bound for one submission.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
type Config struct {
	Addr            string
	Dir             string
	AllowOrigins    []string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8081"
	c.Dir = "received"
	c.AllowOrigins = nil
	c.MaxBodyBytes = 64 << 20
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
