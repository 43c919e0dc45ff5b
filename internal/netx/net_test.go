package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postForm(ctx context.Context, client *http.Client, endpoint string, fields url.Values, h http.Header) (*Response, error) {
	req, err := NewFormRequest(ctx, endpoint, fields, h)
	if err != nil {
		return nil, err
	}
	return Do(client, req)
}

func TestFormRequestAndDo(t *testing.T) {
	fields := url.Values{"tipo": {"agua"}, "file0": {"YWJj+/="}}

	t.Run("form body and headers", func(t *testing.T) {
		var gotMethod, gotCT, gotChannel string
		var gotForm url.Values

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotChannel = r.Header.Get("X-Upload-Channel")
			_ = r.ParseForm()
			gotForm = r.PostForm
			_, _ = w.Write([]byte("ok"))
		}))
		defer ts.Close()

		h := http.Header{}
		h.Set("X-Upload-Channel", "upload_frame_1")

		resp, err := postForm(context.Background(), ts.Client(), ts.URL, fields, h)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPost {
			t.Fatalf("method = %q, want POST", gotMethod)
		}
		if gotCT != "application/x-www-form-urlencoded" {
			t.Fatalf("Content-Type = %q", gotCT)
		}
		if gotChannel != "upload_frame_1" {
			t.Fatalf("channel header = %q", gotChannel)
		}
		if gotForm.Get("file0") != "YWJj+/=" || gotForm.Get("tipo") != "agua" {
			t.Fatalf("form = %v", gotForm)
		}
		if resp.StatusCode != http.StatusOK || string(resp.Body) != "ok" {
			t.Fatalf("resp = %d %q", resp.StatusCode, resp.Body)
		}
	})

	t.Run("non-200 is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("error: boom"))
		}))
		defer ts.Close()

		resp, err := postForm(context.Background(), ts.Client(), ts.URL, fields, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("bad scheme", func(t *testing.T) {
		_, err := NewFormRequest(context.Background(), "ftp://example.org/x", fields, nil)
		if err == nil || !strings.Contains(err.Error(), "unsupported endpoint scheme") {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("unparsable endpoint", func(t *testing.T) {
		_, err := NewFormRequest(context.Background(), "http://[::1", fields, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := ts.URL
		ts.Close()

		_, err := postForm(context.Background(), http.DefaultClient, addr, fields, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
