package interfaces

import (
	"context"
	"time"

	"parkhub/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for Ticket.
//
// The ledger must be able to:
//   - insert an open ticket when a vehicle enters
//   - resolve the open (or, failing that, latest) ticket for a registration
//   - record exit time and price on exit, reporting failure explicitly
//   - count tickets per registration for discount eligibility

type ITicketRepository interface {
	Insert(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	// FindByVehicle returns the open ticket for the registration, or the
	// most recent one when none is open; zero-value when the vehicle has
	// never entered.
	FindByVehicle(ctx context.Context, vehicleRegNumber string) (entities.Ticket, error)
	// UpdateEntryTime backdates a ticket. Only test harnesses use it.
	UpdateEntryTime(ctx context.Context, id string, entryTime time.Time) error
	// UpdateOnExit closes the ticket. The boolean reports whether the write
	// was applied; callers must branch on it rather than assume success.
	UpdateOnExit(ctx context.Context, id string, exitTime time.Time, price float64) (bool, error)
	CountByVehicle(ctx context.Context, vehicleRegNumber string) (int, error)
	TotalCount(ctx context.Context) (int, error)
}
