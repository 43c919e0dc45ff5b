package transport

import (
	"context"
	"errors"
	"net/url"
)

var (
	// ErrCrossOrigin is returned by Inspect when the response cannot be read
	// from the configured origin.
	ErrCrossOrigin = errors.New("response blocked by cross-origin policy")

	// ErrNotLoaded is returned by Inspect before the response has loaded.
	ErrNotLoaded = errors.New("response not loaded")

	// ErrClosed is returned when submitting through a closed channel.
	ErrClosed = errors.New("channel closed")

	// ErrAlreadySubmitted is returned on a second Submit.
	ErrAlreadySubmitted = errors.New("channel already used")
)

// Channel is a single-use submission target.
type Channel interface {
	// Name returns the unique channel name.
	Name() string

	// Submit dispatches fields to endpoint. A returned error means the
	// submission could not be started; asynchronous failures are reported
	// through Failed.
	Submit(ctx context.Context, endpoint string, fields url.Values) error

	// Loaded is closed once the response has finished loading.
	Loaded() <-chan struct{}

	// Failed delivers at most one transport error.
	Failed() <-chan error

	// Inspect returns the loaded response body when it is readable.
	Inspect() (string, error)

	// Close releases the channel. It is safe to call more than once.
	Close() error
}

// Opener allocates channels.
type Opener interface {
	Open(name string) (Channel, error)
}
