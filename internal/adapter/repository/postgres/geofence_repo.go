package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
)

// geofenceRepository implements domain.GeofenceRepository
type geofenceRepository struct {
	db *DB
}

// NewGeofenceRepository creates a new geofence repository
func NewGeofenceRepository(db *DB) domain.GeofenceRepository {
	return &geofenceRepository{db: db}
}

// List retrieves all stored geofences
func (r *geofenceRepository) List(ctx context.Context) ([]*domain.Geofence, error) {
	query := `SELECT id, name, boundary FROM geofences ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query geofences: %w", err)
	}
	defer rows.Close()

	var fences []*domain.Geofence
	for rows.Next() {
		var f domain.Geofence
		var boundary []byte
		if err := rows.Scan(&f.ID, &f.Name, &boundary); err != nil {
			return nil, fmt.Errorf("failed to scan geofence: %w", err)
		}

		f.Boundary = json.RawMessage(boundary)
		fences = append(fences, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate geofences: %w", err)
	}

	return fences, nil
}
