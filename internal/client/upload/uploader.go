package upload

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
	"github.com/dmitrijs2005/eieluploader/internal/client/transport"
	"github.com/dmitrijs2005/eieluploader/internal/common"
	"github.com/dmitrijs2005/eieluploader/internal/encodex"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
	"github.com/google/uuid"
)

const channelPrefix = "upload_frame_"

// Recorder receives every settled attempt, e.g. to keep a local journal.
type Recorder interface {
	Record(ctx context.Context, a *models.Attempt) error
}

// Uploader starts upload sessions against a single endpoint.
// It is safe for concurrent use; sessions share nothing but the opener.
type Uploader struct {
	opts     Options
	channels transport.Opener
	log      logging.Logger
	recorder Recorder

	now   func() time.Time
	newID func(time.Time) string
}

// NewUploader validates opts and returns an Uploader. A missing endpoint is a
// configuration error and is reported before any network activity.
func NewUploader(opts Options, channels transport.Opener, log logging.Logger) (*Uploader, error) {
	if log == nil {
		log = logging.Discard()
	}

	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		log.Error(context.Background(), "uploader not configured", "error", err)
		return nil, err
	}
	if channels == nil {
		err := fmt.Errorf("%w: no response channel opener", common.ErrConfiguration)
		log.Error(context.Background(), "uploader not configured", "error", err)
		return nil, err
	}

	return &Uploader{
		opts:     opts,
		channels: channels,
		log:      log,
		now:      time.Now,
		newID:    channelName,
	}, nil
}

// WithRecorder attaches a Recorder notified after each settlement.
func (u *Uploader) WithRecorder(r Recorder) *Uploader {
	u.recorder = r
	return u
}

// Start begins an upload of req.Content and returns its session.
func (u *Uploader) Start(ctx context.Context, req models.UploadRequest) *Session {
	s := u.newSession(req)
	go s.run(ctx, func() (string, int64, error) {
		return encodex.EncodeBytes(req.Content), int64(len(req.Content)), nil
	})
	return s
}

// StartReader is like Start but reads the content from r. A read failure
// settles the session as failed without opening a channel.
func (u *Uploader) StartReader(ctx context.Context, r io.Reader, req models.UploadRequest) *Session {
	s := u.newSession(req)
	go s.run(ctx, func() (string, int64, error) {
		cr := &countingReader{r: r}
		enc, err := encodex.Encode(cr)
		return enc, cr.n, err
	})
	return s
}

// Submit starts an upload and returns a channel that yields its outcome once.
func (u *Uploader) Submit(ctx context.Context, req models.UploadRequest) <-chan bool {
	return u.Start(ctx, req).Result()
}

// Upload runs one upload and blocks until it settles.
func (u *Uploader) Upload(ctx context.Context, req models.UploadRequest) bool {
	return <-u.Submit(ctx, req)
}

// UploadFile uploads a file from disk described by f. The metadata fields of
// req other than Content are used as given; empty FileName and ContentType
// are taken from f.
func (u *Uploader) UploadFile(ctx context.Context, f *models.LocalFile, req models.UploadRequest) bool {
	if req.FileName == "" {
		req.FileName = f.Name
	}
	if req.ContentType == "" {
		req.ContentType = f.ContentType
	}

	rc, err := f.Open()
	if err != nil {
		return <-u.StartReader(ctx, errReader{fmt.Errorf("open %s: %w", f.Path, err)}, req).Result()
	}
	defer rc.Close()

	return <-u.StartReader(ctx, rc, req).Result()
}

func (u *Uploader) newSession(req models.UploadRequest) *Session {
	started := u.now()
	id := u.newID(started)

	s := &Session{
		id:        id,
		u:         u,
		req:       req,
		log:       u.log.With("session", id, "tipo", string(req.Category), "mun", req.Municipality),
		result:    make(chan bool, 1),
		disposed:  make(chan struct{}),
		startedAt: started,
	}
	s.state.Store(int32(StateCreated))
	return s
}

// channelName combines a timestamp and a random component so concurrent
// sessions never share a channel.
func channelName(t time.Time) string {
	return fmt.Sprintf("%s%d_%s", channelPrefix, t.UnixNano(), strings.ReplaceAll(uuid.NewString(), "-", ""))
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }
