package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkhub/internal/domain/entities"
)

// Full entry/exit workflows over in-memory stores and a pinned clock.

type facility struct {
	uc      *ParkingUseCase
	spots   *fakeSpotRepo
	tickets *fakeTicketRepo
	clock   *fakeClock
}

func newFacility(cars, bikes int) facility {
	spots := newFakeSpotRepo(cars, bikes)
	tickets := newFakeTicketRepo()
	clock := newFakeClock(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	uc := NewParkingUseCase(
		NewSpotAllocatorUseCase(spots),
		NewTicketLedgerUseCase(tickets),
		NewFareUseCase(),
		nil,
		clock,
	)
	return facility{uc: uc, spots: spots, tickets: tickets, clock: clock}
}

func TestParkingScenario_OneHourCarStay(t *testing.T) {
	f := newFacility(3, 2)
	ctx := context.Background()

	result, err := f.uc.ProcessEntry(ctx, "ABCDEF", entities.VehicleCategoryCar)
	if err != nil {
		t.Fatalf("entry failed: %v", err)
	}
	if f.spots.available(result.SpotID) {
		t.Fatalf("spot %d should be occupied", result.SpotID)
	}

	f.clock.Advance(time.Hour)
	receipt, err := f.uc.ProcessExit(ctx, "ABCDEF")
	if err != nil {
		t.Fatalf("exit failed: %v", err)
	}

	expected := (1 - 29.9/60.0) * CarRatePerHour
	if !almostEqual(receipt.Price, expected) {
		t.Fatalf("expected price %v, got %v", expected, receipt.Price)
	}
	if receipt.DiscountApplied {
		t.Fatalf("first visit must not be discounted: %+v", receipt)
	}
	if !f.spots.available(result.SpotID) {
		t.Fatalf("spot %d should be free again", result.SpotID)
	}
}

func TestParkingScenario_TwentyNineMinuteStayIsFree(t *testing.T) {
	for _, category := range []entities.VehicleCategory{entities.VehicleCategoryCar, entities.VehicleCategoryBike} {
		t.Run(string(category), func(t *testing.T) {
			f := newFacility(2, 2)
			ctx := context.Background()

			if _, err := f.uc.ProcessEntry(ctx, "FREE01", category); err != nil {
				t.Fatalf("entry failed: %v", err)
			}
			f.clock.Advance(29 * time.Minute)
			receipt, err := f.uc.ProcessExit(ctx, "FREE01")
			if err != nil {
				t.Fatalf("exit failed: %v", err)
			}
			if receipt.Price != 0 {
				t.Fatalf("expected free stay, got %v", receipt.Price)
			}
		})
	}
}

func TestParkingScenario_SecondVisitGetsDiscount(t *testing.T) {
	f := newFacility(3, 0)
	ctx := context.Background()

	// First visit: one hour, no discount.
	if _, err := f.uc.ProcessEntry(ctx, "LOYAL1", entities.VehicleCategoryCar); err != nil {
		t.Fatalf("first entry failed: %v", err)
	}
	f.clock.Advance(time.Hour)
	first, err := f.uc.ProcessExit(ctx, "LOYAL1")
	if err != nil {
		t.Fatalf("first exit failed: %v", err)
	}
	if first.DiscountApplied {
		t.Fatalf("first visit must not be discounted: %+v", first)
	}

	// Second visit: same duration, 95% of the first price.
	f.clock.Advance(time.Hour)
	second, err := f.uc.ProcessEntry(ctx, "LOYAL1", entities.VehicleCategoryCar)
	if err != nil {
		t.Fatalf("second entry failed: %v", err)
	}
	if !second.RecurringVehicle {
		t.Fatalf("expected returning vehicle on second entry: %+v", second)
	}
	f.clock.Advance(time.Hour)
	receipt, err := f.uc.ProcessExit(ctx, "LOYAL1")
	if err != nil {
		t.Fatalf("second exit failed: %v", err)
	}
	if !receipt.DiscountApplied {
		t.Fatalf("second visit must be discounted: %+v", receipt)
	}
	if !almostEqual(receipt.Price, first.Price*0.95) {
		t.Fatalf("expected %v, got %v", first.Price*0.95, receipt.Price)
	}
}

func TestParkingScenario_EntryWithFullCategory(t *testing.T) {
	f := newFacility(1, 1)
	ctx := context.Background()

	if _, err := f.uc.ProcessEntry(ctx, "CAR001", entities.VehicleCategoryCar); err != nil {
		t.Fatalf("entry failed: %v", err)
	}

	availableBefore, _ := f.spots.AvailableCount(ctx)
	ticketsBefore, _ := f.tickets.TotalCount(ctx)

	_, err := f.uc.ProcessEntry(ctx, "CAR002", entities.VehicleCategoryCar)
	if !errors.Is(err, ErrNoAvailableSpot) {
		t.Fatalf("expected ErrNoAvailableSpot, got %v", err)
	}

	availableAfter, _ := f.spots.AvailableCount(ctx)
	ticketsAfter, _ := f.tickets.TotalCount(ctx)
	if availableAfter != availableBefore {
		t.Fatalf("available count changed: %d -> %d", availableBefore, availableAfter)
	}
	if ticketsAfter != ticketsBefore {
		t.Fatalf("a ticket was created for a rejected entry")
	}
}

func TestParkingScenario_CloseFailureKeepsSpotOccupied(t *testing.T) {
	f := newFacility(2, 0)
	ctx := context.Background()

	result, err := f.uc.ProcessEntry(ctx, "STUCK1", entities.VehicleCategoryCar)
	if err != nil {
		t.Fatalf("entry failed: %v", err)
	}

	f.clock.Advance(time.Hour)
	f.tickets.failExitUpdate = true

	_, err = f.uc.ProcessExit(ctx, "STUCK1")
	if !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
	if f.spots.available(result.SpotID) {
		t.Fatalf("spot %d must stay occupied after a failed close", result.SpotID)
	}

	// Once the store recovers the same exit settles normally.
	f.tickets.failExitUpdate = false
	receipt, err := f.uc.ProcessExit(ctx, "STUCK1")
	if err != nil {
		t.Fatalf("retried exit failed: %v", err)
	}
	if !f.spots.available(result.SpotID) {
		t.Fatalf("spot %d should be free after the retried exit", result.SpotID)
	}
	if receipt.Price <= 0 {
		t.Fatalf("expected a billed stay, got %v", receipt.Price)
	}
}

func TestParkingScenario_BackdatedTicket(t *testing.T) {
	f := newFacility(1, 0)
	ctx := context.Background()

	result, err := f.uc.ProcessEntry(ctx, "OLDIE1", entities.VehicleCategoryCar)
	if err != nil {
		t.Fatalf("entry failed: %v", err)
	}

	// Backdate the open ticket by a day, as integration harnesses do.
	if err := f.tickets.UpdateEntryTime(ctx, result.TicketID, result.EntryTime.Add(-24*time.Hour)); err != nil {
		t.Fatalf("backdate failed: %v", err)
	}

	receipt, err := f.uc.ProcessExit(ctx, "OLDIE1")
	if err != nil {
		t.Fatalf("exit failed: %v", err)
	}
	expected := (24 - 29.9/60.0) * CarRatePerHour
	if !almostEqual(receipt.Price, expected) {
		t.Fatalf("expected %v, got %v", expected, receipt.Price)
	}
}
