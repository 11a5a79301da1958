package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/nssuwan186/hotelops-backend/internal/usecase/slip"
	"github.com/sirupsen/logrus"
)

// Outcome represents the result of a reconciliation attempt.
//
// Booking is nil when the extracted fields matched no unpaid booking; that
// is a normal terminal outcome, not an error. Slip is nil when no
// settlement happened, including the case where another attempt settled
// the same booking first.
type Outcome struct {
	Fields  slip.Fields
	Booking *domain.Booking
	Slip    *domain.PaymentSlip
}

// Service reconciles recognized payment-slip text against unpaid bookings
// and settles the matched booking exactly once.
type Service struct {
	BookingRepo domain.BookingRepository
	Recognizer  slip.Recognizer

	logger *logrus.Logger

	// Serializes find-candidate through commit so two concurrent slip
	// submissions cannot both observe the same booking as unpaid.
	mu sync.Mutex
}

// NewService creates a new reconcile Service instance. recognizer may be
// nil when callers only ever supply already-recognized text.
func NewService(bookingRepo domain.BookingRepository, recognizer slip.Recognizer, logger *logrus.Logger) *Service {
	return &Service{
		BookingRepo: bookingRepo,
		Recognizer:  recognizer,
		logger:      logger,
	}
}

// ReconcileImage runs the recognizer on the slip image and reconciles the
// resulting text. Recognition is expected to be slow, so it runs on its own
// goroutine and is awaited here; an abandoned ctx returns immediately while
// the recognizer winds down on its own.
func (s *Service) ReconcileImage(ctx context.Context, fileID string, image []byte) (*Outcome, error) {
	if s.Recognizer == nil {
		return nil, errors.New("no recognizer configured")
	}

	type recognized struct {
		text string
		err  error
	}

	ch := make(chan recognized, 1)
	go func() {
		text, err := s.Recognizer.RecognizeText(ctx, image)
		ch <- recognized{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("failed to recognize slip image: %w", r.err)
		}
		return s.ReconcileText(ctx, fileID, r.text)
	}
}

// ReconcileText parses the recognized text, matches it against the unpaid
// bookings and, on a match, settles the booking and records the slip as one
// atomic unit.
// Returns domain.ErrExtractionFailed when the text yields no usable fields;
// a valid parse with no matching booking is reported through the Outcome,
// not as an error.
func (s *Service) ReconcileText(ctx context.Context, fileID string, text string) (*Outcome, error) {
	fields, err := slip.Parse(text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unpaid, err := s.BookingRepo.ListUnpaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid bookings: %w", err)
	}

	booking := Match(unpaid, fields)
	if booking == nil {
		s.logger.WithFields(logrus.Fields{
			"name":   fields.Name,
			"amount": fields.Amount.String(),
		}).Info("no unpaid booking matches slip")
		return &Outcome{Fields: fields}, nil
	}

	paymentSlip := &domain.PaymentSlip{
		ID:        uuid.New(),
		BookingID: booking.ID,
		FileID:    fileID,
		SlipData:  text,
		// Verified is axiomatic: the slip exists because the match succeeded.
		Verified:   true,
		UploadedAt: time.Now(),
	}

	if err := s.BookingRepo.SettleWithSlip(ctx, booking.ID, paymentSlip); err != nil {
		if errors.Is(err, domain.ErrAlreadySettled) {
			// Another attempt won the race; the booking is paid and exactly
			// one slip exists, so this attempt is a no-op.
			s.logger.WithField("booking_id", booking.ID).Warn("booking settled concurrently, skipping duplicate slip")
			return &Outcome{Fields: fields, Booking: booking}, nil
		}
		return nil, fmt.Errorf("failed to settle booking %d: %w", booking.ID, err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"customer":   booking.CustomerName,
		"amount":     booking.TotalPrice.String(),
	}).Info("booking settled")

	return &Outcome{Fields: fields, Booking: booking, Slip: paymentSlip}, nil
}

// Match returns the unpaid booking the extracted fields settle, or nil if
// none qualifies. A booking qualifies when its customer name contains the
// extracted name case-insensitively and its total price equals the amount
// exactly, with no tolerance. When several qualify the lowest booking ID
// wins, so the pick is deterministic regardless of snapshot order.
func Match(unpaid []*domain.Booking, fields slip.Fields) *domain.Booking {
	needle := strings.ToLower(fields.Name)

	var best *domain.Booking
	for _, b := range unpaid {
		if b.IsPaid {
			continue
		}
		if !strings.Contains(strings.ToLower(b.CustomerName), needle) {
			continue
		}
		if !b.TotalPrice.Equal(fields.Amount) {
			continue
		}
		if best == nil || b.ID < best.ID {
			best = b
		}
	}
	return best
}
