package cli

import (
	"context"
	"fmt"
	"strings"
)

const usage = `usage:
  uploader [config flags] [upload] -tipo CATEGORY -mun CODE [-obra ID] FILE
  uploader [config flags] history [-n N]

config flags:
  -c, -config FILE   JSON config file
  -u URL             form endpoint (url_adjuntos)
  -origin ORIGIN     origin presented on submissions
  -timeout DURATION  safety deadline per upload (default 30s)
  -journal PATH      attempt journal ("" disables it)
  -log-level LEVEL   debug, info, warn or error`

// Run dispatches args (with config flags already removed) and returns the
// process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ExitUsage
	}

	switch cmd := args[0]; {
	case cmd == "upload":
		return a.Upload(ctx, args[1:])
	case cmd == "history":
		return a.History(ctx, args[1:])
	case cmd == "help", cmd == "-h", cmd == "-help":
		fmt.Fprintln(a.out, usage)
		return ExitOK
	case strings.HasPrefix(cmd, "-"):
		return a.Upload(ctx, args)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		fmt.Fprintln(a.out, usage)
		return ExitUsage
	}
}
