package upload

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
	"github.com/dmitrijs2005/eieluploader/internal/client/transport"
)

// fakeChannel is a scriptable transport.Channel.
type fakeChannel struct {
	name string

	loaded chan struct{}
	failed chan error

	body       string
	inspectErr error
	submitErr  error
	autoLoad   bool

	mu        sync.Mutex
	endpoint  string
	fields    url.Values
	submitted bool
	closes    int
	loadOnce  sync.Once
}

func newFakeChannel(name string) *fakeChannel {
	return &fakeChannel{
		name:   name,
		loaded: make(chan struct{}),
		failed: make(chan error, 1),
	}
}

func (c *fakeChannel) Name() string { return c.name }

func (c *fakeChannel) Submit(_ context.Context, endpoint string, fields url.Values) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitErr != nil {
		return c.submitErr
	}
	c.endpoint = endpoint
	c.fields = fields
	c.submitted = true
	if c.autoLoad {
		go c.load()
	}
	return nil
}

func (c *fakeChannel) load() { c.loadOnce.Do(func() { close(c.loaded) }) }

func (c *fakeChannel) Loaded() <-chan struct{} { return c.loaded }

func (c *fakeChannel) Failed() <-chan error { return c.failed }

func (c *fakeChannel) Inspect() (string, error) {
	if c.inspectErr != nil {
		return "", c.inspectErr
	}
	return c.body, nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return nil
}

func (c *fakeChannel) closeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}

func (c *fakeChannel) submittedFields() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// fakeOpener hands out channels prepared by configure.
type fakeOpener struct {
	configure func(*fakeChannel)
	openErr   error

	mu       sync.Mutex
	channels []*fakeChannel
}

func (o *fakeOpener) Open(name string) (transport.Channel, error) {
	if o.openErr != nil {
		return nil, o.openErr
	}
	ch := newFakeChannel(name)
	if o.configure != nil {
		o.configure(ch)
	}
	o.mu.Lock()
	o.channels = append(o.channels, ch)
	o.mu.Unlock()
	return ch, nil
}

func (o *fakeOpener) opened() []*fakeChannel {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*fakeChannel(nil), o.channels...)
}

// memRecorder keeps recorded attempts in memory.
type memRecorder struct {
	err error

	mu       sync.Mutex
	attempts []*models.Attempt
}

func (r *memRecorder) Record(_ context.Context, a *models.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, a)
	return r.err
}

func (r *memRecorder) all() []*models.Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Attempt(nil), r.attempts...)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("permission denied") }

// stuckRecorder holds every write until its context ends.
type stuckRecorder struct {
	errs chan error
}

func (r *stuckRecorder) Record(ctx context.Context, _ *models.Attempt) error {
	<-ctx.Done()
	r.errs <- ctx.Err()
	return ctx.Err()
}
