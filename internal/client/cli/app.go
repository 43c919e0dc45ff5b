package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/eieluploader/internal/client/config"
	"github.com/dmitrijs2005/eieluploader/internal/client/journal"
	"github.com/dmitrijs2005/eieluploader/internal/client/transport"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
	"golang.org/x/term"
)

const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

type App struct {
	config      *config.Config
	log         logging.Logger
	opener      transport.Opener
	db          *sql.DB
	journal     journal.Repository
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// Option customizes an App.
type Option func(*App)

// WithIO replaces stdin/stdout. interactive controls whether missing values
// are prompted for.
func WithIO(in io.Reader, out io.Writer, interactive bool) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
		a.interactive = interactive
	}
}

// WithOpener replaces the HTTP response channel opener.
func WithOpener(o transport.Opener) Option {
	return func(a *App) { a.opener = o }
}

// NewApp wires the journal and the response channel opener. The endpoint is
// not checked here so that commands which do not upload keep working.
func NewApp(c *config.Config, log logging.Logger, opts ...Option) (*App, error) {
	a := &App{
		config:      c,
		log:         log,
		opener:      transport.NewHTTPOpener(&http.Client{}, c.Origin),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
	for _, o := range opts {
		o(a)
	}

	if c.JournalPath != "" {
		db, err := journal.InitDatabase(context.Background(), c.JournalPath)
		if err != nil {
			log.Error(context.Background(), "error initializing journal", "path", c.JournalPath, "error", err)
			return nil, err
		}
		a.db = db
		a.journal = journal.NewSQLiteRepository(db)
	}

	return a, nil
}

// Close releases the journal database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
