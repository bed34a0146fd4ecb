package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"parkhub/internal/domain/entities"
)

// In-memory stores and a settable clock for the end-to-end workflow
// scenarios. Unit paths use the generated gomock mocks instead.

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeSpotRepo struct {
	mu    sync.Mutex
	spots map[int]entities.ParkingSpot
}

func newFakeSpotRepo(cars, bikes int) *fakeSpotRepo {
	r := &fakeSpotRepo{spots: map[int]entities.ParkingSpot{}}
	id := 1
	for i := 0; i < cars; i++ {
		r.spots[id] = entities.ParkingSpot{ID: id, Category: entities.VehicleCategoryCar, Available: true}
		id++
	}
	for i := 0; i < bikes; i++ {
		r.spots[id] = entities.ParkingSpot{ID: id, Category: entities.VehicleCategoryBike, Available: true}
		id++
	}
	return r
}

func (r *fakeSpotRepo) NextAvailable(_ context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.spots))
	for id := range r.spots {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		s := r.spots[id]
		if s.Category == category && s.Available {
			return s, nil
		}
	}
	return entities.ParkingSpot{}, nil
}

func (r *fakeSpotRepo) SetAvailability(_ context.Context, id int, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.spots[id]
	if !ok {
		return fmt.Errorf("spot %d not found", id)
	}
	s.Available = available
	r.spots[id] = s
	return nil
}

func (r *fakeSpotRepo) TotalCount(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spots), nil
}

func (r *fakeSpotRepo) AvailableCount(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.spots {
		if s.Available {
			n++
		}
	}
	return n, nil
}

func (r *fakeSpotRepo) available(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spots[id].Available
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets []entities.Ticket

	// When set, UpdateOnExit reports the write as not applied.
	failExitUpdate bool
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{}
}

func (r *fakeTicketRepo) Insert(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append(r.tickets, t)
	return t, nil
}

func (r *fakeTicketRepo) FindByVehicle(_ context.Context, reg string) (entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest entities.Ticket
	for _, t := range r.tickets {
		if t.VehicleRegNumber != reg {
			continue
		}
		if t.Open() {
			return t, nil
		}
		if latest.ID == "" || t.EntryTime.After(latest.EntryTime) {
			latest = t
		}
	}
	return latest, nil
}

func (r *fakeTicketRepo) UpdateEntryTime(_ context.Context, id string, entryTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets[i].EntryTime = entryTime
			return nil
		}
	}
	return fmt.Errorf("ticket %s not found", id)
}

func (r *fakeTicketRepo) UpdateOnExit(_ context.Context, id string, exitTime time.Time, price float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failExitUpdate {
		return false, nil
	}
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			exit := exitTime
			r.tickets[i].ExitTime = &exit
			r.tickets[i].Price = price
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTicketRepo) CountByVehicle(_ context.Context, reg string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tickets {
		if t.VehicleRegNumber == reg {
			n++
		}
	}
	return n, nil
}

func (r *fakeTicketRepo) TotalCount(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tickets), nil
}
