package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/eieluploader/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    bind address (e.g. ":8081")
//	-d string    directory for received files
//	-o string    comma-separated CORS allow-list
//	-m int       max submission size in bytes
//	-s duration  shutdown timeout
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-o", "-m", "-s"})

	fs := flag.NewFlagSet("stubendpoint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.Dir, "d", cfg.Dir, "directory for received files")
	origins := fs.String("o", strings.Join(cfg.AllowOrigins, ","), "comma-separated CORS allow-list")
	fs.Int64Var(&cfg.MaxBodyBytes, "m", cfg.MaxBodyBytes, "max submission size in bytes")
	fs.DurationVar(&cfg.ShutdownTimeout, "s", cfg.ShutdownTimeout, "shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.AllowOrigins = splitList(*origins)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
