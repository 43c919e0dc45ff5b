// Package upload runs single-attempt file uploads against a form endpoint
// whose response usually cannot be read.
//
// # Overview
//
// Each call to Uploader.Start creates one Session. The session encodes the
// file, opens a uniquely named response channel, submits the form fields and
// then waits for the first of:
//
//   - the channel finished loading (completion signal),
//   - the channel reported a transport failure,
//   - the safety deadline (Options.Timeout, 30s by default),
//   - cancellation of the caller's context.
//
// The first signal settles the session; everything after it is ignored. A
// loaded response that can be inspected and contains "error" settles false, an
// inspectable response without it settles true, and a response that cannot be
// inspected settles true as well: the request reached the endpoint, which is
// all that can be known. After settlement the channel is released once, after
// Options.CleanupGrace.
//
// Session lifecycle:
//
//	Created -> AwaitingSignal -> Settled -> Disposed
//
// Callers only see a bool. The reason behind it is logged and, when a
// Recorder is attached, journaled.
package upload
