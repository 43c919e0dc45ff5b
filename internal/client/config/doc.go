// Package config loads runtime configuration for the uploader CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (EIEL_*), after loading ./.env when present
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string          form endpoint URL (url_adjuntos)
//	-origin string     origin presented on submissions
//	-timeout duration  safety deadline per upload
//	-journal string    attempt journal path
//	-log-level string  debug, info, warn or error
//
// # JSON schema
//
// Durations can be either strings like "30s" or integer nanoseconds:
//
//	{
//	  "url_adjuntos": "https://script.google.com/macros/s/XXXX/exec",
//	  "origin": "https://eiel.example.org",
//	  "timeout": "30s",
//	  "cleanup_grace": "100ms",
//	  "journal_path": "uploads.db",
//	  "journal_keep": 500,
//	  "log_level": "info"
//	}
//
// The endpoint has no default. The uploader refuses to start without one.
package config
