// Package common defines shared constants and sentinel errors used across
// the uploader layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Configuration errors, reported before any network activity.
	ErrConfiguration = errors.New("configuration error")

	// Local read or transform failure while producing the payload.
	ErrEncoding = errors.New("encoding error")

	// The submission mechanism itself failed.
	ErrDispatch = errors.New("dispatch error")

	// No completion signal arrived within the safety deadline.
	ErrDeadline = errors.New("deadline exceeded waiting for completion signal")

	// The response was readable and carried the failure marker.
	ErrRemoteFailure = errors.New("remote endpoint reported failure")

	// Validation errors for upload metadata.
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoMunicipality  = errors.New("municipality code is required")
)
