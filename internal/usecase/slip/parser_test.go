package slip

import (
	"testing"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantName   string
		wantAmount string
		wantErr    error
	}{
		{
			name:       "english labels with colon",
			text:       "Name: Somchai Boon\nAmount: 1,500.00",
			wantName:   "Somchai Boon",
			wantAmount: "1500.00",
		},
		{
			name:       "thai labels",
			text:       "ชื่อ: สมชาย บุญมี\nจำนวนเงิน: 2,350.75 บาท",
			wantName:   "สมชาย บุญมี",
			wantAmount: "2350.75",
		},
		{
			name:       "labels separated by whitespace only",
			text:       "To Anna Lee\nTotal 980.00",
			wantName:   "Anna Lee",
			wantAmount: "980.00",
		},
		{
			name:       "thousands separators are removed",
			text:       "Name: Big Spender\nAmount: 12,345.67",
			wantName:   "Big Spender",
			wantAmount: "12345.67",
		},
		{
			name:       "unlabeled amount fallback",
			text:       "Name: Somchai Boon\nTransfer complete 1,500.00 THB",
			wantName:   "Somchai Boon",
			wantAmount: "1500.00",
		},
		{
			name:       "first labeled amount wins over later ones",
			text:       "Name: Somchai\nAmount: 100.00\nAmount: 999.99",
			wantName:   "Somchai",
			wantAmount: "100.00",
		},
		{
			name:       "labeled amount wins over earlier bare number",
			text:       "Ref 77.70\nName: Somchai\nAmount: 1,500.00",
			wantName:   "Somchai",
			wantAmount: "1500.00",
		},
		{
			name:    "amount present but no name label",
			text:    "Transfer complete\nAmount: 1,500.00",
			wantErr: domain.ErrExtractionFailed,
		},
		{
			name:    "name present but no amount",
			text:    "Name: Somchai Boon\nhave a nice day",
			wantErr: domain.ErrExtractionFailed,
		},
		{
			name:    "amount without two decimals is not recognized",
			text:    "Name: Somchai Boon\nAmount: 1500",
			wantErr: domain.ErrExtractionFailed,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: domain.ErrExtractionFailed,
		},
		{
			name:    "garbled text",
			text:    "~~@@##%%\n\n\t^^",
			wantErr: domain.ErrExtractionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Parse(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, fields.Name)

			want, perr := decimal.NewFromString(tt.wantAmount)
			assert.NoError(t, perr)
			assert.True(t, fields.Amount.Equal(want),
				"amount = %s, want %s", fields.Amount, want)
		})
	}
}

func TestParse_NameIsNeverMistakenForAmount(t *testing.T) {
	// A payer name made of digits-looking text must not satisfy the amount
	// pattern, and an amount line must not be captured as a name.
	fields, err := Parse("Name: 4th Floor Cafe\nAmount: 250.00")
	assert.NoError(t, err)
	assert.Equal(t, "4th Floor Cafe", fields.Name)
	assert.True(t, fields.Amount.Equal(decimal.RequireFromString("250.00")))
}
