package interfaces

import (
	"context"
	"parkhub/internal/domain/entities"
)

// ISpotRepository abstracts DynamoDB persistence for ParkingSpot.
//
// The facility owns a fixed spot inventory; repositories only ever flip the
// availability flag. A missing spot is reported as a zero-value entity by
// reads and as an error by writes.

type ISpotRepository interface {
	// NextAvailable returns the lowest-numbered available spot of the
	// category, or a zero-value spot when none is free.
	NextAvailable(ctx context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error)
	// SetAvailability flips the availability flag. Claiming a spot
	// (available=false) is conditional on the spot still being free, so a
	// lost race surfaces as an error instead of a silent double-claim.
	SetAvailability(ctx context.Context, id int, available bool) error
	TotalCount(ctx context.Context) (int, error)
	AvailableCount(ctx context.Context) (int, error)
}
