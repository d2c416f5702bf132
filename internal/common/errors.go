// Package common defines sentinel errors shared by the client layers of
// jobtracker. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote store errors.
	ErrorNotFound   = errors.New("not found")
	ErrorValidation = errors.New("validation error")
	ErrorInternal   = errors.New("internal error")
	ErrUnavailable  = errors.New("server unavailable")

	// Client-side policy rejections. These never reach the wire.
	ErrCrossApplicationMove  = errors.New("cannot move across applications")
	ErrInvalidDropTarget     = errors.New("invalid drop target")
	ErrNoApplicationSelected = errors.New("no application selected")
	ErrUnsupported           = errors.New("operation not supported for this item")

	// ErrSuperseded is returned when a newer request for the same slot has
	// started before this one completed; the result was discarded.
	ErrSuperseded = errors.New("request superseded")
)
