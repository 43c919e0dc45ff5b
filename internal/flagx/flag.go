// Package flagx lets several components share one command line: each picks
// out the flags it owns and leaves the rest to the others.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// SplitArgs partitions args into the allowed flags (with their values) and
// everything else, keeping the original order on both sides.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.json
//
// A separate value is only taken when the next argument does not start with
// "-".
func SplitArgs(args []string, allowedFlags []string) (matched, rest []string) {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			matched = append(matched, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				matched = append(matched, args[i+1])
				i++
			}
			continue
		}

		rest = append(rest, arg)
	}

	return matched, rest
}

// FilterArgs returns only the allowed flags and their values.
func FilterArgs(args []string, allowedFlags []string) []string {
	matched, _ := SplitArgs(args, allowedFlags)
	return matched
}

// StripArgs returns args without the given flags and their values.
func StripArgs(args []string, flags []string) []string {
	_, rest := SplitArgs(args, flags)
	return rest
}

// ConfigFlags are the flags that select a JSON config file.
var ConfigFlags = []string{"-c", "-config"}

// ConfigPath extracts the config file path given with -c or -config. When both
// appear the last one wins. It returns "" when neither is present.
func ConfigPath(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFlags))

	return config
}
