package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// bookingRepository implements domain.BookingRepository
type bookingRepository struct {
	db *DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *DB) domain.BookingRepository {
	return &bookingRepository{db: db}
}

// ListUnpaid retrieves all bookings that have not been settled yet
func (r *bookingRepository) ListUnpaid(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		SELECT id, customer_name, room_number, check_in, check_out, total_price, is_paid, created_at
		FROM bookings
		WHERE is_paid = FALSE
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		var price string
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.RoomNumber, &b.CheckIn, &b.CheckOut, &price, &b.IsPaid, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		b.TotalPrice, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("failed to parse booking total price: %w", err)
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

// SettleWithSlip flips the booking to paid and records the slip in one
// database transaction. The row lock plus the is_paid guard make the
// settlement at-most-once even when two processes race on the same
// booking.
func (r *bookingRepository) SettleWithSlip(ctx context.Context, bookingID int64, slip *domain.PaymentSlip) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	var isPaid bool
	err = dbTx.QueryRowContext(ctx, `SELECT is_paid FROM bookings WHERE id = $1 FOR UPDATE`, bookingID).Scan(&isPaid)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock booking: %w", err)
	}

	if isPaid {
		return domain.ErrAlreadySettled
	}

	if _, err := dbTx.ExecContext(ctx, `UPDATE bookings SET is_paid = TRUE WHERE id = $1 AND is_paid = FALSE`, bookingID); err != nil {
		return fmt.Errorf("failed to mark booking as paid: %w", err)
	}

	insertSlipQuery := `
		INSERT INTO payment_slips (id, booking_id, file_id, slip_data, verified, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = dbTx.ExecContext(ctx, insertSlipQuery,
		slip.ID,
		slip.BookingID,
		slip.FileID,
		slip.SlipData,
		slip.Verified,
		slip.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment slip: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement: %w", err)
	}

	return nil
}

// SumPaidBetween returns the total price of paid bookings created in [from, to)
func (r *bookingRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_price), 0)
		FROM bookings
		WHERE is_paid = TRUE AND created_at >= $1 AND created_at < $2
	`

	var total string
	if err := r.db.QueryRowContext(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid bookings: %w", err)
	}

	sum, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse booking sum: %w", err)
	}

	return sum, nil
}
