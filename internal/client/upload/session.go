package upload

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
	"github.com/dmitrijs2005/eieluploader/internal/client/transport"
	"github.com/dmitrijs2005/eieluploader/internal/common"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
)

// State is the lifecycle position of a session.
type State int32

const (
	StateCreated State = iota
	StateAwaitingSignal
	StateSettled
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingSignal:
		return "awaiting_signal"
	case StateSettled:
		return "settled"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Reason explains a settlement. It is never returned to callers of Upload.
type Reason string

const (
	ReasonInvalidRequest  Reason = "invalid_request"
	ReasonEncodeFailed    Reason = "encode_failed"
	ReasonDispatchFailed  Reason = "dispatch_failed"
	ReasonRemoteFailure   Reason = "remote_failure"
	ReasonCompleted       Reason = "completed"
	ReasonCompletedOpaque Reason = "completed_opaque"
	ReasonDeadline        Reason = "deadline"
	ReasonCanceled        Reason = "canceled"
)

// Session is one in-flight upload attempt.
type Session struct {
	id  string
	u   *Uploader
	req models.UploadRequest
	log logging.Logger

	state   atomic.Int32
	settled atomic.Bool

	// written once by the settling call, before result is sent
	outcome bool
	reason  Reason
	size    int64

	result chan bool

	channel     transport.Channel
	channelMu   sync.Mutex
	disposeOnce sync.Once
	disposed    chan struct{}

	startedAt time.Time
}

// ID returns the response channel name of the session.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// Result yields the outcome exactly once and is then closed.
func (s *Session) Result() <-chan bool { return s.result }

// Disposed is closed once the session's resources have been released.
func (s *Session) Disposed() <-chan struct{} { return s.disposed }

// Reason reports why the session settled. Valid after Result has yielded.
func (s *Session) Reason() Reason {
	if s.State() < StateSettled {
		return ""
	}
	return s.reason
}

func (s *Session) run(ctx context.Context, encode func() (string, int64, error)) {
	if err := s.req.Validate(); err != nil {
		s.log.Error(ctx, "invalid upload request", "error", err)
		s.settle(ctx, false, ReasonInvalidRequest)
		return
	}

	encoded, size, err := encode()
	s.size = size
	if err != nil {
		s.log.Error(ctx, "reading local file", "error", err)
		s.settle(ctx, false, ReasonEncodeFailed)
		return
	}

	s.log.Info(ctx, "starting upload", "filename", s.req.FileName, "bytes", size)

	ch, err := s.u.channels.Open(s.id)
	if err != nil {
		s.log.Error(ctx, "opening response channel", "error", err)
		s.settle(ctx, false, ReasonDispatchFailed)
		return
	}
	s.channelMu.Lock()
	s.channel = ch
	s.channelMu.Unlock()

	deadline := time.NewTimer(s.u.opts.Timeout)
	defer deadline.Stop()

	s.state.Store(int32(StateAwaitingSignal))

	if err := ch.Submit(ctx, s.u.opts.Endpoint, s.req.Fields(encoded)); err != nil {
		s.log.Error(ctx, "submitting form", "error", errors.Join(common.ErrDispatch, err))
		s.settle(ctx, false, ReasonDispatchFailed)
		return
	}

	select {
	case <-ch.Loaded():
		s.onLoaded(ctx, ch)

	case err := <-ch.Failed():
		s.log.Error(ctx, "transport failure", "error", errors.Join(common.ErrDispatch, err))
		s.settle(ctx, false, ReasonDispatchFailed)

	case <-deadline.C:
		s.log.Warn(ctx, "no response before deadline", "timeout", s.u.opts.Timeout, "error", common.ErrDeadline)
		s.settle(ctx, false, ReasonDeadline)

	case <-ctx.Done():
		s.log.Warn(ctx, "upload canceled by caller", "error", ctx.Err())
		s.settle(ctx, false, ReasonCanceled)
	}
}

// onLoaded resolves the completion signal. Reaching it at all means the
// request got to the endpoint; only a readable body can prove otherwise.
func (s *Session) onLoaded(ctx context.Context, ch transport.Channel) {
	body, err := ch.Inspect()
	if err != nil {
		s.log.Debug(ctx, "response not inspectable", "error", err)
		s.settle(ctx, true, ReasonCompletedOpaque)
		return
	}

	if strings.Contains(body, common.FailureMarker) {
		s.log.Error(ctx, "endpoint reported failure", "error", common.ErrRemoteFailure, "body", body)
		s.settle(ctx, false, ReasonRemoteFailure)
		return
	}

	s.settle(ctx, true, ReasonCompleted)
}

// settle records the outcome if the session has not settled yet and reports
// whether this call was the one that did.
func (s *Session) settle(ctx context.Context, ok bool, reason Reason) bool {
	if !s.settled.CompareAndSwap(false, true) {
		s.log.Debug(ctx, "ignoring late signal", "reason", reason)
		return false
	}

	s.outcome = ok
	s.reason = reason
	s.state.Store(int32(StateSettled))

	s.log.Info(ctx, "upload settled", "success", ok, "reason", reason, "elapsed", s.u.now().Sub(s.startedAt))

	// journal first so the row exists by the time the caller sees the result
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.u.opts.RecordTimeout)
	s.record(recCtx)
	cancel()

	s.result <- ok
	close(s.result)

	time.AfterFunc(s.u.opts.CleanupGrace, s.dispose)

	return true
}

// dispose releases the channel. It runs at most once and tolerates a channel
// that is already closed or was never opened.
func (s *Session) dispose() {
	s.disposeOnce.Do(func() {
		s.channelMu.Lock()
		ch := s.channel
		s.channel = nil
		s.channelMu.Unlock()

		if ch != nil {
			if err := ch.Close(); err != nil {
				s.log.Warn(context.Background(), "releasing response channel", "error", err)
			}
		}

		s.state.Store(int32(StateDisposed))
		close(s.disposed)
	})
}

func (s *Session) record(ctx context.Context) {
	if s.u.recorder == nil {
		return
	}

	a := &models.Attempt{
		SessionID:    s.id,
		FileName:     s.req.FileName,
		Size:         s.size,
		Category:     s.req.Category,
		Municipality: s.req.Municipality,
		WorkID:       s.req.WorkID,
		Success:      s.outcome,
		Reason:       string(s.reason),
		StartedAt:    s.startedAt,
		FinishedAt:   s.u.now(),
	}
	if err := s.u.recorder.Record(ctx, a); err != nil {
		s.log.Warn(ctx, "journaling attempt", "error", err)
	}
}
