package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/eieluploader/internal/common"
	"github.com/dmitrijs2005/eieluploader/internal/netx"
)

// HTTPOpener opens channels that submit over net/http.
type HTTPOpener struct {
	client *http.Client
	origin string
}

// NewHTTPOpener returns an opener whose channels send requests with client and
// present themselves as origin. A nil client means http.DefaultClient.
func NewHTTPOpener(client *http.Client, origin string) *HTTPOpener {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPOpener{client: client, origin: strings.TrimRight(origin, "/")}
}

func (o *HTTPOpener) Open(name string) (Channel, error) {
	return &httpChannel{
		name:   name,
		client: o.client,
		origin: o.origin,
		loaded: make(chan struct{}),
		failed: make(chan error, 1),
	}, nil
}

type httpChannel struct {
	name   string
	client *http.Client
	origin string

	loaded chan struct{}
	failed chan error

	mu         sync.Mutex
	resp       *netx.Response
	sameOrigin bool
	submitted  bool
	closed     bool
	cancel     context.CancelFunc
}

func (c *httpChannel) Name() string { return c.name }

func (c *httpChannel) Loaded() <-chan struct{} { return c.loaded }

func (c *httpChannel) Failed() <-chan error { return c.failed }

func (c *httpChannel) Submit(ctx context.Context, endpoint string, fields url.Values) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.submitted {
		return ErrAlreadySubmitted
	}

	h := http.Header{}
	h.Set(common.ChannelHeaderName, c.name)
	if c.origin != "" {
		h.Set("Origin", c.origin)
	}

	reqCtx, cancel := context.WithCancel(ctx)
	req, err := netx.NewFormRequest(reqCtx, endpoint, fields, h)
	if err != nil {
		cancel()
		return err
	}

	c.submitted = true
	c.cancel = cancel
	c.sameOrigin = c.origin != "" && originOf(req.URL) == c.origin

	go c.run(req)

	return nil
}

func (c *httpChannel) run(req *http.Request) {
	resp, err := netx.Do(c.client, req)
	if err != nil {
		c.failed <- err
		return
	}

	c.mu.Lock()
	c.resp = resp
	c.mu.Unlock()

	close(c.loaded)
}

func (c *httpChannel) Inspect() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resp == nil {
		return "", ErrNotLoaded
	}
	if !c.sameOrigin && !allowsOrigin(c.resp.Header, c.origin) {
		return "", ErrCrossOrigin
	}
	return string(c.resp.Body), nil
}

func (c *httpChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	c.resp = nil
	return nil
}

func allowsOrigin(h http.Header, origin string) bool {
	allow := strings.TrimSpace(h.Get("Access-Control-Allow-Origin"))
	if allow == "*" {
		return true
	}
	return origin != "" && allow == origin
}

func originOf(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}
