package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DotEnvFile is loaded into the environment when it exists. Variables already
// set in the environment are not overridden.
var DotEnvFile = ".env"

// Environment variable names.
const (
	EnvEndpointURL  = "EIEL_URL_ADJUNTOS"
	EnvOrigin       = "EIEL_ORIGIN"
	EnvTimeout      = "EIEL_TIMEOUT"
	EnvCleanupGrace = "EIEL_CLEANUP_GRACE"
	EnvJournalPath  = "EIEL_JOURNAL_PATH"
	EnvJournalKeep  = "EIEL_JOURNAL_KEEP"
	EnvLogLevel     = "EIEL_LOG_LEVEL"
)

// parseEnv overlays cfg with EIEL_* environment variables.
func parseEnv(cfg *Config, dotEnv string) error {
	if dotEnv != "" {
		if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotEnv, err)
		}
	}

	if v, ok := os.LookupEnv(EnvEndpointURL); ok {
		cfg.EndpointURL = v
	}
	if v, ok := os.LookupEnv(EnvOrigin); ok {
		cfg.Origin = v
	}
	if v, ok := os.LookupEnv(EnvJournalPath); ok {
		cfg.JournalPath = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	if err := envDuration(EnvTimeout, &cfg.Timeout); err != nil {
		return err
	}
	if err := envDuration(EnvCleanupGrace, &cfg.CleanupGrace); err != nil {
		return err
	}

	if v, ok := os.LookupEnv(EnvJournalKeep); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJournalKeep, err)
		}
		cfg.JournalKeep = n
	}

	return nil
}

func envDuration(name string, dst *time.Duration) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}
