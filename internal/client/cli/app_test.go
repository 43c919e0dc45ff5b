package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/eieluploader/internal/client/config"
	"github.com/dmitrijs2005/eieluploader/internal/client/transport"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *App
	out   *bytes.Buffer
	forms chan url.Values
	file  string
}

func newTestEnv(t *testing.T, body string, input string, interactive bool, mutate func(*config.Config)) *testEnv {
	t.Helper()

	forms := make(chan url.Values, 4)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		forms <- r.PostForm
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o600))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointURL = ts.URL
	cfg.Origin = ts.URL
	cfg.Timeout = 5 * time.Second
	cfg.CleanupGrace = time.Millisecond
	cfg.JournalPath = filepath.Join(dir, "uploads.db")
	if mutate != nil {
		mutate(cfg)
	}

	out := &bytes.Buffer{}
	app, err := NewApp(cfg, logging.Discard(),
		WithIO(strings.NewReader(input), out, interactive),
		WithOpener(transport.NewHTTPOpener(ts.Client(), cfg.Origin)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return &testEnv{app: app, out: out, forms: forms, file: file}
}

func TestRun_UploadSuccessAndHistory(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, nil)
	ctx := context.Background()

	code := env.app.Run(ctx, []string{"upload", "-tipo", "agua", "-mun", "M01", env.file})
	require.Equal(t, ExitOK, code, env.out.String())
	assert.Contains(t, env.out.String(), "upload success: a.txt")

	form := <-env.forms
	assert.Equal(t, "agua", form.Get("tipo"))
	assert.Equal(t, "M01", form.Get("mun"))
	assert.Equal(t, "YWJj", form.Get("file0"))
	assert.Equal(t, "a.txt", form.Get("filename"))
	assert.False(t, form.Has("obra"))

	env.out.Reset()
	require.Equal(t, ExitOK, env.app.Run(ctx, []string{"history"}))
	assert.Contains(t, env.out.String(), "a.txt")
	assert.Contains(t, env.out.String(), "completed")
}

func TestRun_DefaultCommandIsUpload(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, nil)

	code := env.app.Run(context.Background(), []string{"-tipo", "obra", "-mun", "M01", "-obra", "OBR-42", env.file})
	require.Equal(t, ExitOK, code, env.out.String())
	assert.Equal(t, "OBR-42", (<-env.forms).Get("obra"))
}

func TestRun_RemoteFailure(t *testing.T) {
	env := newTestEnv(t, `{"status":"error"}`, "", false, nil)

	code := env.app.Run(context.Background(), []string{"upload", "-tipo", "agua", "-mun", "M01", env.file})
	assert.Equal(t, ExitFailed, code)
	assert.Contains(t, env.out.String(), "upload failed")
}

func TestRun_MissingEndpoint(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, func(c *config.Config) { c.EndpointURL = "" })

	code := env.app.Run(context.Background(), []string{"upload", "-tipo", "agua", "-mun", "M01", env.file})
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, env.out.String(), "configuration error")
	assert.Empty(t, env.forms, "nothing may be sent without an endpoint")
}

func TestRun_MissingFile(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, nil)

	code := env.app.Run(context.Background(), []string{"upload", "-tipo", "agua", "-mun", "M01", env.file + ".missing"})
	assert.Equal(t, ExitFailed, code)
	assert.Empty(t, env.forms)
}

func TestRun_UsageErrors(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, nil)
	ctx := context.Background()

	assert.Equal(t, ExitUsage, env.app.Run(ctx, nil))
	assert.Equal(t, ExitUsage, env.app.Run(ctx, []string{"frobnicate"}))
	assert.Equal(t, ExitUsage, env.app.Run(ctx, []string{"upload", "-tipo", "agua", "-mun", "M01"}))
	assert.Equal(t, ExitUsage, env.app.Run(ctx, []string{"upload", "-tipo", "parques", "-mun", "M01", env.file}))
	assert.Equal(t, ExitUsage, env.app.Run(ctx, []string{"upload", "-bogus", env.file}))
	assert.Equal(t, ExitOK, env.app.Run(ctx, []string{"help"}))
}

func TestRun_InteractivePrompts(t *testing.T) {
	env := newTestEnv(t, "ok", "parques\nobra\nM07\nOBR-9\n", true, nil)

	code := env.app.Run(context.Background(), []string{"upload", env.file})
	require.Equal(t, ExitOK, code, env.out.String())

	form := <-env.forms
	assert.Equal(t, "obra", form.Get("tipo"))
	assert.Equal(t, "M07", form.Get("mun"))
	assert.Equal(t, "OBR-9", form.Get("obra"))
	assert.Contains(t, env.out.String(), `"parques" is not one of`)
}

func TestRun_HistoryWithoutJournal(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, func(c *config.Config) { c.JournalPath = "" })

	assert.Equal(t, ExitUsage, env.app.Run(context.Background(), []string{"history"}))
	assert.Contains(t, env.out.String(), "journal is disabled")
}

func TestRun_HistoryEmpty(t *testing.T) {
	env := newTestEnv(t, "ok", "", false, nil)

	assert.Equal(t, ExitOK, env.app.Run(context.Background(), []string{"history", "-n", "5"}))
	assert.Contains(t, env.out.String(), "no uploads yet")
}
