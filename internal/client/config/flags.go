package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/eieluploader/internal/flagx"
)

// FlagNames lists the command-line flags owned by this package, including the
// config file selectors. Other components should strip them before parsing.
var FlagNames = []string{"-c", "-config", "-u", "-origin", "-timeout", "-journal", "-log-level"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string          form endpoint URL
//	-origin string     origin presented on submissions
//	-timeout duration  safety deadline per upload (e.g. 30s)
//	-journal string    attempt journal path ("" disables the journal)
//	-log-level string  debug, info, warn or error
//
// Only the flags above are considered; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-u", "-origin", "-timeout", "-journal", "-log-level"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointURL, "u", cfg.EndpointURL, "form endpoint URL")
	fs.StringVar(&cfg.Origin, "origin", cfg.Origin, "origin presented on submissions")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "safety deadline per upload")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "attempt journal path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
