package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"parkhub/internal/domain/entities"
	"parkhub/internal/usecase/interfaces"
)

// Payment capture outcome reported on a receipt. Capture happens strictly
// after the core exit workflow; it never fails the exit itself.
const (
	PaymentStatusCaptured = "captured"
	PaymentStatusFailed   = "failed"
	PaymentStatusSkipped  = "skipped"
)

// EntryResult is what the front end needs to direct an arriving vehicle.
type EntryResult struct {
	TicketID         string
	SpotID           int
	Category         entities.VehicleCategory
	VehicleRegNumber string
	EntryTime        time.Time
	RecurringVehicle bool
}

// Receipt summarizes one closed occupancy episode.
type Receipt struct {
	TicketID         string
	SpotID           int
	VehicleRegNumber string
	EntryTime        time.Time
	ExitTime         time.Time
	Price            float64
	DiscountApplied  bool
	PaymentStatus    string
	PaymentID        string
}

// IParkingUseCase exposes the two operator-facing workflows.

type IParkingUseCase interface {
	ProcessEntry(ctx context.Context, vehicleRegNumber string, category entities.VehicleCategory) (EntryResult, error)
	ProcessExit(ctx context.Context, vehicleRegNumber string) (Receipt, error)
}

type ParkingUseCase struct {
	allocator ISpotAllocatorUseCase
	ledger    ITicketLedgerUseCase
	fare      IFareUseCase
	gateway   interfaces.IPaymentGateway
	clock     interfaces.IClock
}

var _ IParkingUseCase = (*ParkingUseCase)(nil)

// NewParkingUseCase wires the workflows. gateway may be nil: payment capture
// is then skipped and receipts report it as such.
func NewParkingUseCase(
	allocator ISpotAllocatorUseCase,
	ledger ITicketLedgerUseCase,
	fare IFareUseCase,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
) *ParkingUseCase {
	if clock == nil {
		clock = interfaces.SystemClock{}
	}
	return &ParkingUseCase{allocator: allocator, ledger: ledger, fare: fare, gateway: gateway, clock: clock}
}

// ProcessEntry assigns a spot to an arriving vehicle and opens its ticket.
func (u *ParkingUseCase) ProcessEntry(ctx context.Context, vehicleRegNumber string, category entities.VehicleCategory) (EntryResult, error) {
	vehicleRegNumber = strings.TrimSpace(vehicleRegNumber)
	if vehicleRegNumber == "" {
		return EntryResult{}, ErrInvalidVehicleRegNumber
	}
	log.Printf("[parking][usecase] entry start vehicle_reg=%s category=%s", vehicleRegNumber, category)

	spot, err := u.allocator.Allocate(ctx, category)
	if err != nil {
		if errors.Is(err, ErrNoAvailableSpot) {
			log.Printf("[parking][usecase] entry rejected vehicle_reg=%s category=%s: facility full", vehicleRegNumber, category)
			return EntryResult{}, err
		}
		log.Printf("[parking][usecase] allocation failed vehicle_reg=%s err=%v", vehicleRegNumber, err)
		return EntryResult{}, err
	}

	recurring := false
	if visits, err := u.ledger.VisitCount(ctx, vehicleRegNumber); err == nil && visits > 0 {
		recurring = true
		log.Printf("[parking][usecase] recurring vehicle vehicle_reg=%s visits=%d", vehicleRegNumber, visits)
	}

	entryTime := u.clock.Now()
	ticket, err := u.ledger.OpenTicket(ctx, spot, vehicleRegNumber, entryTime)
	if err != nil {
		// The spot was claimed but no ticket records the occupancy; put it
		// back so the facility state stays consistent.
		if relErr := u.allocator.Release(ctx, spot.ID); relErr != nil {
			log.Printf("[parking][usecase] rollback release failed spot_id=%d err=%v", spot.ID, relErr)
		}
		return EntryResult{}, err
	}

	log.Printf("[parking][usecase] entry success vehicle_reg=%s spot_id=%d ticket_id=%s", vehicleRegNumber, spot.ID, ticket.ID)
	return EntryResult{
		TicketID:         ticket.ID,
		SpotID:           spot.ID,
		Category:         spot.Category,
		VehicleRegNumber: vehicleRegNumber,
		EntryTime:        entryTime,
		RecurringVehicle: recurring,
	}, nil
}

// ProcessExit prices the vehicle's stay, closes the ticket and releases the
// spot. The spot is released only after the closed ticket is persisted: an
// unbilled vehicle must not free its spot.
func (u *ParkingUseCase) ProcessExit(ctx context.Context, vehicleRegNumber string) (Receipt, error) {
	vehicleRegNumber = strings.TrimSpace(vehicleRegNumber)
	if vehicleRegNumber == "" {
		return Receipt{}, ErrInvalidVehicleRegNumber
	}
	log.Printf("[parking][usecase] exit start vehicle_reg=%s", vehicleRegNumber)

	ticket, err := u.ledger.FindOpenOrLatest(ctx, vehicleRegNumber)
	if err != nil {
		return Receipt{}, err
	}
	if !ticket.Open() {
		// Closed is terminal; a second exit for the same stay has no
		// occupancy to settle.
		log.Printf("[parking][usecase] exit rejected vehicle_reg=%s: ticket %s already closed", vehicleRegNumber, ticket.ID)
		return Receipt{}, ErrTicketNotFound
	}

	visits, err := u.ledger.VisitCount(ctx, vehicleRegNumber)
	if err != nil {
		return Receipt{}, err
	}
	discountEligible := visits > 1

	exitTime := u.clock.Now()
	price, err := u.fare.CalculateFare(ticket.EntryTime, exitTime, ticket.SpotCategory, discountEligible)
	if err != nil {
		log.Printf("[parking][usecase] fare computation failed ticket_id=%s err=%v", ticket.ID, err)
		return Receipt{}, err
	}

	if err := u.ledger.CloseTicket(ctx, ticket.ID, exitTime, price); err != nil {
		// Deliberate fail-safe: the spot stays occupied when the billed
		// exit could not be persisted.
		log.Printf("[parking][usecase] exit aborted vehicle_reg=%s spot_id=%d: %v", vehicleRegNumber, ticket.SpotID, err)
		return Receipt{}, err
	}

	if err := u.allocator.Release(ctx, ticket.SpotID); err != nil {
		log.Printf("[parking][usecase] spot release failed spot_id=%d err=%v", ticket.SpotID, err)
		return Receipt{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	receipt := Receipt{
		TicketID:         ticket.ID,
		SpotID:           ticket.SpotID,
		VehicleRegNumber: vehicleRegNumber,
		EntryTime:        ticket.EntryTime,
		ExitTime:         exitTime,
		Price:            price,
		DiscountApplied:  discountEligible && price > 0,
		PaymentStatus:    PaymentStatusSkipped,
	}
	u.capturePayment(ctx, &receipt)

	log.Printf("[parking][usecase] exit success vehicle_reg=%s ticket_id=%s price=%.2f discount=%t payment=%s",
		vehicleRegNumber, receipt.TicketID, receipt.Price, receipt.DiscountApplied, receipt.PaymentStatus)
	return receipt, nil
}

// capturePayment charges the fare through the configured gateway. Runs after
// ticket close and spot release; a provider failure marks the receipt but
// never fails the exit.
func (u *ParkingUseCase) capturePayment(ctx context.Context, receipt *Receipt) {
	if u.gateway == nil || receipt.Price <= 0 {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": receipt.Price,
		"description":        fmt.Sprintf("Parking ticket %s", receipt.TicketID),
		"external_reference": receipt.TicketID,
	})
	if err != nil {
		receipt.PaymentStatus = PaymentStatusFailed
		return
	}

	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[parking][usecase] payment capture failed ticket_id=%s err=%v", receipt.TicketID, err)
		receipt.PaymentStatus = PaymentStatusFailed
		return
	}
	log.Printf("[parking][usecase] payment captured ticket_id=%s payment_id=%s provider_status=%s", receipt.TicketID, paymentID, status)
	receipt.PaymentStatus = PaymentStatusCaptured
	receipt.PaymentID = paymentID
}
