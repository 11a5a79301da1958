package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a recorded outgoing amount, used by the daily report.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}
