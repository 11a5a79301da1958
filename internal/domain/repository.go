package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BookingRepository defines the interface for booking persistence operations
type BookingRepository interface {
	// ListUnpaid retrieves a snapshot of all bookings with IsPaid = false
	ListUnpaid(ctx context.Context) ([]*Booking, error)

	// SettleWithSlip flips IsPaid to true on the booking and records the
	// payment slip as a single atomic unit; a partial application of either
	// half is a correctness violation. Returns ErrNotFound if the booking
	// does not exist and ErrAlreadySettled if IsPaid was already true, in
	// which case no slip is recorded.
	SettleWithSlip(ctx context.Context, bookingID int64, slip *PaymentSlip) error

	// SumPaidBetween returns the total price of paid bookings created in
	// [from, to), used by the daily report
	SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

// GeofenceRepository defines the interface for geofence persistence operations
type GeofenceRepository interface {
	// List retrieves all stored geofences
	List(ctx context.Context) ([]*Geofence, error)
}

// ExpenseRepository defines the interface for expense persistence operations
type ExpenseRepository interface {
	// SumBetween returns the total expense amount recorded in [from, to)
	SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
