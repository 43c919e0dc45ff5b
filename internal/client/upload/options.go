package upload

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/eieluploader/internal/common"
)

const (
	// DefaultTimeout bounds how long a session waits for the completion signal.
	DefaultTimeout = 30 * time.Second

	// DefaultCleanupGrace delays channel release after settlement so trailing
	// response activity can finish first.
	DefaultCleanupGrace = 100 * time.Millisecond

	// DefaultRecordTimeout bounds the journal write that precedes result
	// delivery.
	DefaultRecordTimeout = time.Second
)

// Options configures an Uploader.
type Options struct {
	// Endpoint is the destination form URL. Required.
	Endpoint string

	Timeout      time.Duration
	CleanupGrace time.Duration

	// RecordTimeout caps how long a Recorder may hold up the outcome.
	RecordTimeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.CleanupGrace <= 0 {
		o.CleanupGrace = DefaultCleanupGrace
	}
	if o.RecordTimeout <= 0 {
		o.RecordTimeout = DefaultRecordTimeout
	}
}

func (o Options) validate() error {
	if o.Endpoint == "" {
		return fmt.Errorf("%w: upload endpoint is not set", common.ErrConfiguration)
	}
	return nil
}
