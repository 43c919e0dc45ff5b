package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmitrijs2005/eieluploader/internal/client/journal"
	"github.com/dmitrijs2005/eieluploader/internal/client/models"
	"github.com/dmitrijs2005/eieluploader/internal/client/upload"
	"github.com/dmitrijs2005/eieluploader/internal/filex"
)

// Upload uploads the single file named in args and reports the outcome.
func (a *App) Upload(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(a.out)

	tipo := fs.String("tipo", "", "category: agua, residuos, cementerios or obra")
	mun := fs.String("mun", "", "municipality code")
	obra := fs.String("obra", "", "work identifier (tipo obra only)")

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.out, "exactly one file is required")
		return ExitUsage
	}

	req := models.UploadRequest{
		Category:     models.Category(*tipo),
		Municipality: *mun,
		WorkID:       *obra,
	}
	if err := a.completeRequest(&req); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitUsage
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitUsage
	}

	uploader, err := upload.NewUploader(upload.Options{
		Endpoint:     a.config.EndpointURL,
		Timeout:      a.config.Timeout,
		CleanupGrace: a.config.CleanupGrace,
	}, a.opener, a.log)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitUsage
	}
	if a.journal != nil {
		uploader.WithRecorder(a.journal)
	}

	path := fs.Arg(0)
	f, err := filex.ReadUpload(path)
	if err != nil {
		a.log.Error(ctx, "error reading local file", "path", path, "error", err)
		fmt.Fprintln(a.out, "upload failed:", err.Error())
		return ExitFailed
	}

	ok := uploader.UploadFile(ctx, f, req)
	a.pruneJournal(ctx)

	if !ok {
		fmt.Fprintln(a.out, "upload failed:", f.Name)
		return ExitFailed
	}

	fmt.Fprintln(a.out, "upload success:", f.Name)
	return ExitOK
}

// completeRequest asks for missing values when running interactively.
func (a *App) completeRequest(req *models.UploadRequest) error {
	if !a.interactive {
		return nil
	}

	if req.Category == "" {
		choices := make([]string, len(models.Categories))
		for i, c := range models.Categories {
			choices[i] = string(c)
		}
		c, err := GetChoice(a.reader, "Category", choices, false, a.out)
		if err != nil {
			return err
		}
		req.Category = models.Category(c)
	}

	if req.Municipality == "" {
		m, err := GetSimpleText(a.reader, "Municipality code", a.out)
		if err != nil {
			return err
		}
		req.Municipality = m
	}

	if req.Category.RequiresWorkID() && req.WorkID == "" {
		w, err := GetSimpleText(a.reader, "Work (obra) identifier, empty for none", a.out)
		if err != nil {
			return err
		}
		req.WorkID = w
	}

	return nil
}

func (a *App) pruneJournal(ctx context.Context) {
	if a.db == nil || a.config.JournalKeep <= 0 {
		return
	}
	if _, err := journal.Prune(ctx, a.db, a.config.JournalKeep); err != nil {
		a.log.Warn(ctx, "error pruning journal", "error", err)
	}
}
