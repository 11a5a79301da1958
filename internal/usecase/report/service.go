package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DailySummary represents the financial summary for a single day
type DailySummary struct {
	Date     time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// ReportService handles financial reporting operations
type ReportService struct {
	BookingRepo domain.BookingRepository
	ExpenseRepo domain.ExpenseRepository
}

// NewReportService creates a new ReportService instance
func NewReportService(bookingRepo domain.BookingRepository, expenseRepo domain.ExpenseRepository) *ReportService {
	return &ReportService{
		BookingRepo: bookingRepo,
		ExpenseRepo: expenseRepo,
	}
}

// Daily returns income from paid bookings, recorded expenses and the net
// for the calendar day containing the given time, in that time's location.
func (s *ReportService) Daily(ctx context.Context, day time.Time) (*DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	income, err := s.BookingRepo.SumPaidBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum paid bookings: %w", err)
	}

	expenses, err := s.ExpenseRepo.SumBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &DailySummary{
		Date:     start,
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}, nil
}
