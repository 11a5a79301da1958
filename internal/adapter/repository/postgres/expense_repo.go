package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// expenseRepository implements domain.ExpenseRepository
type expenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *DB) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

// SumBetween returns the total expense amount recorded in [from, to)
func (r *expenseRepository) SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1 AND date < $2
	`

	var total string
	if err := r.db.QueryRowContext(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	sum, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse expense sum: %w", err)
	}

	return sum, nil
}
