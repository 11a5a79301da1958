package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBooking_Validate(t *testing.T) {
	checkIn := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	tests := []struct {
		name    string
		booking Booking
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid booking should pass",
			booking: Booking{
				ID:           1,
				CustomerName: "Mr. Somchai Boonmee",
				RoomNumber:   "101",
				CheckIn:      checkIn,
				CheckOut:     checkOut,
				TotalPrice:   decimal.NewFromInt(1500),
			},
			wantErr: false,
		},
		{
			name: "booking with empty customer name should fail",
			booking: Booking{
				ID:         2,
				RoomNumber: "102",
				TotalPrice: decimal.NewFromInt(1500),
			},
			wantErr: true,
			errMsg:  "customer name cannot be empty",
		},
		{
			name: "booking with zero total price should fail",
			booking: Booking{
				ID:           3,
				CustomerName: "Anna",
				TotalPrice:   decimal.Zero,
			},
			wantErr: true,
			errMsg:  "total price must be positive",
		},
		{
			name: "booking with check-out before check-in should fail",
			booking: Booking{
				ID:           4,
				CustomerName: "Anna",
				TotalPrice:   decimal.NewFromInt(900),
				CheckIn:      checkOut,
				CheckOut:     checkIn,
			},
			wantErr: true,
			errMsg:  "check-out cannot be before check-in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.booking.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentSlip_Validate(t *testing.T) {
	tests := []struct {
		name    string
		slip    PaymentSlip
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid slip should pass",
			slip: PaymentSlip{
				ID:        uuid.New(),
				BookingID: 1,
				FileID:    "telegram-file-123",
				SlipData:  "Name: Somchai\nAmount: 1,500.00",
				Verified:  true,
			},
			wantErr: false,
		},
		{
			name: "slip without booking reference should fail",
			slip: PaymentSlip{
				ID:     uuid.New(),
				FileID: "telegram-file-123",
			},
			wantErr: true,
			errMsg:  "must reference a booking",
		},
		{
			name: "slip without file ID should fail",
			slip: PaymentSlip{
				ID:        uuid.New(),
				BookingID: 1,
			},
			wantErr: true,
			errMsg:  "file ID cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slip.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
