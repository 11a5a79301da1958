package geofence

import (
	"context"
	"fmt"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"
)

// Evaluator decides which stored geofences contain a reported position.
type Evaluator struct {
	GeofenceRepo domain.GeofenceRepository

	logger *logrus.Logger
}

// NewEvaluator creates a new Evaluator instance
func NewEvaluator(geofenceRepo domain.GeofenceRepository, logger *logrus.Logger) *Evaluator {
	return &Evaluator{
		GeofenceRepo: geofenceRepo,
		logger:       logger,
	}
}

// ContainingPoint returns the geofences whose boundary contains or touches
// the point; a position exactly on an edge counts as inside. A geofence
// with an unusable boundary is logged and skipped, so one bad region never
// blocks evaluation of the rest.
func (e *Evaluator) ContainingPoint(ctx context.Context, lat, lon float64) ([]*domain.Geofence, error) {
	fences, err := e.GeofenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}

	point := orb.Point{lon, lat}

	var matches []*domain.Geofence
	for _, fence := range fences {
		ring, ok := ParseBoundary(fence.Boundary)
		if !ok {
			e.logger.WithFields(logrus.Fields{
				"geofence_id": fence.ID,
				"name":        fence.Name,
			}).Warn("skipping geofence with unusable boundary")
			continue
		}

		if e.contains(fence, ring, point) {
			matches = append(matches, fence)
		}
	}

	return matches, nil
}

// contains runs the boundary-inclusive containment test for one geofence,
// converting any panic from degenerate geometry into a non-match so the
// remaining geofences still get evaluated.
func (e *Evaluator) contains(fence *domain.Geofence, ring orb.Ring, point orb.Point) (inside bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(logrus.Fields{
				"geofence_id": fence.ID,
				"name":        fence.Name,
				"panic":       r,
			}).Warn("containment test failed for geofence")
			inside = false
		}
	}()

	// Even-odd ray casting; self-intersecting rings still answer the way
	// their repaired (zero-buffer) form would, and points on the boundary
	// count as inside.
	return planar.RingContains(ring, point)
}
