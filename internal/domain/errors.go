package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrExtractionFailed indicates the recognized text yielded no usable
	// name or no usable amount. Recoverable: the caller should ask the user
	// to retry or enter the details manually.
	ErrExtractionFailed = errors.New("could not extract name and amount from slip text")

	// ErrAlreadySettled indicates an attempt to settle a booking whose
	// IsPaid flag is already true. Settlement is idempotent, so callers
	// treat this as a no-op rather than a failure.
	ErrAlreadySettled = errors.New("booking is already settled")
)
