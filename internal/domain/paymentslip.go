package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PaymentSlip is the recognized-text artifact tied to a confirmed match.
// A slip is created exactly once per successful reconciliation and is
// immutable afterwards. Verified is true by construction: a slip only
// exists because a matching unpaid booking was found.
type PaymentSlip struct {
	ID         uuid.UUID
	BookingID  int64
	FileID     string // opaque handle to the source image, owned by the caller
	SlipData   string // raw text produced by the recognizer
	Verified   bool
	UploadedAt time.Time
}

// Validate ensures the payment slip adheres to domain rules
// Returns an error if validation fails
func (s *PaymentSlip) Validate() error {
	if s.BookingID == 0 {
		return errors.New("payment slip must reference a booking")
	}

	if s.FileID == "" {
		return errors.New("payment slip file ID cannot be empty")
	}

	return nil
}
