package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents an outstanding obligation awaiting settlement.
// IsPaid is monotonic: it only ever moves from false to true, and only the
// reconciliation flow is allowed to flip it.
type Booking struct {
	ID           int64
	CustomerName string
	RoomNumber   string
	CheckIn      time.Time
	CheckOut     time.Time
	TotalPrice   decimal.Decimal
	IsPaid       bool
	CreatedAt    time.Time
}

// Validate ensures the booking adheres to domain rules
// Returns an error if validation fails
func (b *Booking) Validate() error {
	if b.CustomerName == "" {
		return errors.New("booking customer name cannot be empty")
	}

	if b.TotalPrice.LessThanOrEqual(decimal.Zero) {
		return errors.New("booking total price must be positive")
	}

	if !b.CheckOut.IsZero() && !b.CheckIn.IsZero() && b.CheckOut.Before(b.CheckIn) {
		return errors.New("booking check-out cannot be before check-in")
	}

	return nil
}
