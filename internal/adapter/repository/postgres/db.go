package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=hotelops sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// InitSchema creates the tables this core reads and writes if they do not
// exist yet. Bookings, geofences and expenses are populated by external
// processes; payment slips are written here.
func (db *DB) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			room_number TEXT NOT NULL DEFAULT '',
			check_in TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			check_out TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_price NUMERIC(12,2) NOT NULL,
			is_paid BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS payment_slips (
			id UUID PRIMARY KEY,
			booking_id BIGINT NOT NULL REFERENCES bookings(id),
			file_id TEXT NOT NULL,
			slip_data TEXT NOT NULL DEFAULT '',
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS geofences (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			boundary JSONB NOT NULL
		);

		CREATE TABLE IF NOT EXISTS expenses (
			id BIGSERIAL PRIMARY KEY,
			description TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			category TEXT NOT NULL DEFAULT 'General',
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}
