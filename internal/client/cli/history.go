package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"
)

// History prints the most recent attempts from the journal.
func (a *App) History(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(a.out)
	n := fs.Int("n", 20, "number of attempts to show")

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if a.journal == nil {
		fmt.Fprintln(a.out, "journal is disabled")
		return ExitUsage
	}

	attempts, err := a.journal.Recent(ctx, *n)
	if err != nil {
		a.log.Error(ctx, "error reading journal", "error", err)
		return ExitFailed
	}

	if len(attempts) == 0 {
		fmt.Fprintln(a.out, "no uploads yet")
		return ExitOK
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tFILE\tTIPO\tMUN\tOBRA\tRESULT\tREASON\tTOOK")
	for _, at := range attempts {
		result := "failed"
		if at.Success {
			result = "ok"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			at.StartedAt.Local().Format(time.DateTime), at.FileName, at.Category, at.Municipality,
			at.WorkID, result, at.Reason, at.Duration().Round(time.Millisecond))
	}
	if err := tw.Flush(); err != nil {
		return ExitFailed
	}

	return ExitOK
}
