// Package transport provides response channels for form submissions.
//
// # Overview
//
// A Channel is a private, non-navigating target for one form submission. It
// does not hand the response to the submitter. Instead it reports that the
// response finished loading (Loaded), that the transport failed (Failed), and
// lets the caller try to read the response (Inspect). Reading is only
// permitted when the response is same-origin or grants the configured origin
// through Access-Control-Allow-Origin; otherwise Inspect returns
// ErrCrossOrigin.
//
// Key Types
//
//   - type Opener     : allocates named channels
//   - type Channel    : one submission target
//   - type HTTPOpener : net/http implementation
//
// Typical Usage
//
//	ch, _ := transport.NewHTTPOpener(http.DefaultClient, "https://eiel.example").Open(name)
//	defer ch.Close()
//	_ = ch.Submit(ctx, endpoint, fields)
//	select {
//	case <-ch.Loaded():
//	    body, err := ch.Inspect()
//	case err := <-ch.Failed():
//	}
package transport
