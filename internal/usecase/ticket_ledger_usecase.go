package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"parkhub/internal/domain/entities"
	"parkhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound          = errors.New("ticket not found")
	ErrInvalidVehicleRegNumber = errors.New("invalid vehicle registration number")
	ErrPersistenceFailure      = errors.New("persistence failure")
)

// ITicketLedgerUseCase owns the ticket lifecycle: a ticket is created open on
// entry and closed exactly once on exit.

type ITicketLedgerUseCase interface {
	OpenTicket(ctx context.Context, spot entities.ParkingSpot, vehicleRegNumber string, entryTime time.Time) (entities.Ticket, error)
	FindOpenOrLatest(ctx context.Context, vehicleRegNumber string) (entities.Ticket, error)
	CloseTicket(ctx context.Context, ticketID string, exitTime time.Time, price float64) error
	VisitCount(ctx context.Context, vehicleRegNumber string) (int, error)
	TotalCount(ctx context.Context) (int, error)
}

type TicketLedgerUseCase struct {
	repo interfaces.ITicketRepository
}

var _ ITicketLedgerUseCase = (*TicketLedgerUseCase)(nil)

func NewTicketLedgerUseCase(repo interfaces.ITicketRepository) *TicketLedgerUseCase {
	return &TicketLedgerUseCase{repo: repo}
}

func (u *TicketLedgerUseCase) OpenTicket(ctx context.Context, spot entities.ParkingSpot, vehicleRegNumber string, entryTime time.Time) (entities.Ticket, error) {
	vehicleRegNumber = strings.TrimSpace(vehicleRegNumber)
	if vehicleRegNumber == "" {
		return entities.Ticket{}, ErrInvalidVehicleRegNumber
	}

	t := entities.Ticket{
		ID:               uuid.NewString(),
		SpotID:           spot.ID,
		SpotCategory:     spot.Category,
		VehicleRegNumber: vehicleRegNumber,
		EntryTime:        entryTime,
	}

	created, err := u.repo.Insert(ctx, t)
	if err != nil {
		log.Printf("[ledger][usecase] insert failed vehicle_reg=%s spot_id=%d err=%v", vehicleRegNumber, spot.ID, err)
		return entities.Ticket{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	log.Printf("[ledger][usecase] ticket opened ticket_id=%s vehicle_reg=%s spot_id=%d", created.ID, vehicleRegNumber, spot.ID)
	return created, nil
}

func (u *TicketLedgerUseCase) FindOpenOrLatest(ctx context.Context, vehicleRegNumber string) (entities.Ticket, error) {
	vehicleRegNumber = strings.TrimSpace(vehicleRegNumber)
	if vehicleRegNumber == "" {
		return entities.Ticket{}, ErrInvalidVehicleRegNumber
	}

	t, err := u.repo.FindByVehicle(ctx, vehicleRegNumber)
	if err != nil {
		return entities.Ticket{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

// CloseTicket records exit time and price. A store failure is reported to
// the caller, never swallowed: the exit workflow must not release the spot
// for an unbilled vehicle.
func (u *TicketLedgerUseCase) CloseTicket(ctx context.Context, ticketID string, exitTime time.Time, price float64) error {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return ErrTicketNotFound
	}

	ok, err := u.repo.UpdateOnExit(ctx, ticketID, exitTime, price)
	if err != nil {
		log.Printf("[ledger][usecase] close failed ticket_id=%s err=%v", ticketID, err)
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if !ok {
		log.Printf("[ledger][usecase] close not applied ticket_id=%s", ticketID)
		return ErrPersistenceFailure
	}
	log.Printf("[ledger][usecase] ticket closed ticket_id=%s price=%.2f", ticketID, price)
	return nil
}

// VisitCount counts every ticket ever created for the registration, the
// current visit included. A vehicle is a recurring customer when the count
// exceeds one at exit time.
func (u *TicketLedgerUseCase) VisitCount(ctx context.Context, vehicleRegNumber string) (int, error) {
	vehicleRegNumber = strings.TrimSpace(vehicleRegNumber)
	if vehicleRegNumber == "" {
		return 0, ErrInvalidVehicleRegNumber
	}

	n, err := u.repo.CountByVehicle(ctx, vehicleRegNumber)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return n, nil
}

func (u *TicketLedgerUseCase) TotalCount(ctx context.Context) (int, error) {
	return u.repo.TotalCount(ctx)
}
