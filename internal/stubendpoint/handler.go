package stubendpoint

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
	"github.com/dmitrijs2005/eieluploader/internal/common"
	"github.com/dmitrijs2005/eieluploader/internal/encodex"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
)

var (
	ErrMissingFile = errors.New("missing file content")
	ErrBadFileName = errors.New("invalid file name")
	ErrBadPath     = errors.New("invalid path component")
)

// Received describes a stored submission.
type Received struct {
	Channel      string
	Category     models.Category
	Municipality string
	WorkID       string
	FileName     string
	MimeType     string
	Path         string
	Size         int
}

// Handler accepts upload forms and stores the decoded file under dir.
type Handler struct {
	dir     string
	maxBody int64
	log     logging.Logger

	// onReceive, when set, is called after a file is stored.
	onReceive func(Received)
}

func NewHandler(dir string, maxBody int64, log logging.Logger) *Handler {
	return &Handler{dir: dir, maxBody: maxBody, log: log}
}

// Receive handles one form submission. The body is "ok" on success and
// starts with "error" otherwise, which is all a reading client looks at.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	rec, content, err := parseSubmission(r)
	if err != nil {
		h.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	path, err := h.store(rec, content)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	rec.Path = path

	h.log.Info(ctx, "file received",
		"channel", rec.Channel, "tipo", rec.Category, "mun", rec.Municipality,
		"obra", rec.WorkID, "file", rec.FileName, "size", rec.Size)

	if h.onReceive != nil {
		h.onReceive(*rec)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func parseSubmission(r *http.Request) (*Received, []byte, error) {
	req := models.UploadRequest{
		Category:     models.Category(r.PostForm.Get(models.FieldCategory)),
		Municipality: strings.TrimSpace(r.PostForm.Get(models.FieldMunicipality)),
		WorkID:       strings.TrimSpace(r.PostForm.Get(models.FieldWorkID)),
	}
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	mun, err := pathComponent(req.Municipality, ErrBadPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", err, models.FieldMunicipality)
	}
	req.Municipality = mun

	if req.Category.RequiresWorkID() && req.WorkID != "" {
		work, err := pathComponent(req.WorkID, ErrBadPath)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", err, models.FieldWorkID)
		}
		req.WorkID = work
	}

	encoded := r.PostForm.Get(models.FieldContent)
	if encoded == "" {
		return nil, nil, ErrMissingFile
	}
	content, err := encodex.Decode(encoded)
	if err != nil {
		return nil, nil, err
	}

	name, err := pathComponent(r.PostForm.Get(models.FieldFileName), ErrBadFileName)
	if err != nil {
		return nil, nil, err
	}

	return &Received{
		Channel:      r.Header.Get(common.ChannelHeaderName),
		Category:     req.Category,
		Municipality: req.Municipality,
		WorkID:       req.WorkID,
		FileName:     name,
		MimeType:     r.PostForm.Get(models.FieldMimeType),
		Size:         len(content),
	}, content, nil
}

// pathComponent flattens s to its last element. Anything that would still
// name the current or parent directory is rejected with bad.
func pathComponent(s string, bad error) (string, error) {
	s = filepath.Base(filepath.Clean("/" + filepath.ToSlash(s)))
	if s == "." || s == ".." || s == "" || strings.ContainsRune(s, filepath.Separator) || strings.ContainsRune(s, '/') {
		return "", bad
	}
	return s, nil
}

// store writes content to dir/<mun>/<tipo>[/<obra>]/<filename>.
func (h *Handler) store(rec *Received, content []byte) (string, error) {
	parts := []string{h.dir, rec.Municipality, string(rec.Category)}
	if rec.Category.RequiresWorkID() && rec.WorkID != "" {
		parts = append(parts, rec.WorkID)
	}
	dir := filepath.Join(parts...)

	rel, err := filepath.Rel(h.dir, filepath.Join(dir, rec.FileName))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes %s", ErrBadPath, rec.FileName, h.dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	path := filepath.Join(dir, rec.FileName)
	if err := os.WriteFile(path, content, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.log.Warn(r.Context(), "submission rejected",
		"channel", r.Header.Get(common.ChannelHeaderName), "status", status, "error", err)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, "%s: %v", common.FailureMarker, err)
}
