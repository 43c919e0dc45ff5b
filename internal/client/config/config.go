package config

import (
	"time"
)

// Config holds runtime settings for the uploader CLI.
//
// Fields:
//   - EndpointURL: the form endpoint attachments are posted to (url_adjuntos).
//   - Origin: origin presented on submissions; responses are only inspected
//     when they are same-origin or grant this origin.
//   - Timeout: safety deadline for one upload.
//   - CleanupGrace: delay before a settled session releases its channel.
//   - JournalPath: SQLite file of the attempt journal; empty disables it.
//   - JournalKeep: how many attempts the journal retains.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointURL  string
	Origin       string
	Timeout      time.Duration
	CleanupGrace time.Duration
	JournalPath  string
	JournalKeep  int
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults. EndpointURL has no default:
// it must come from the environment, a config file or a flag.
func (c *Config) LoadDefaults() {
	c.Origin = ""
	c.Timeout = 30 * time.Second
	c.CleanupGrace = 100 * time.Millisecond
	c.JournalPath = "uploads.db"
	c.JournalKeep = 500
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and a .env file if present), a JSON file selected with -c
// or -config, and finally command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, DotEnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
