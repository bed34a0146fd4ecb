package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"parkhub/internal/domain/entities"
	"parkhub/internal/usecase/interfaces"
)

var ErrNoAvailableSpot = errors.New("no available parking spot")

// ISpotAllocatorUseCase selects, occupies and releases parking spots.
//
// NextAvailable/Occupy/Release are the raw primitives; Allocate is the
// entry-workflow operation that runs select+claim under the category lock so
// two concurrent entries never receive the same spot.

type ISpotAllocatorUseCase interface {
	NextAvailable(ctx context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error)
	Occupy(ctx context.Context, spotID int) error
	Release(ctx context.Context, spotID int) error
	Allocate(ctx context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error)
	TotalCount(ctx context.Context) (int, error)
	AvailableCount(ctx context.Context) (int, error)
}

type SpotAllocatorUseCase struct {
	repo interfaces.ISpotRepository

	// One lock per category: any free spot of the category is a valid
	// target, so serializing per category is enough.
	locks map[entities.VehicleCategory]*sync.Mutex
}

var _ ISpotAllocatorUseCase = (*SpotAllocatorUseCase)(nil)

func NewSpotAllocatorUseCase(repo interfaces.ISpotRepository) *SpotAllocatorUseCase {
	return &SpotAllocatorUseCase{
		repo: repo,
		locks: map[entities.VehicleCategory]*sync.Mutex{
			entities.VehicleCategoryCar:  {},
			entities.VehicleCategoryBike: {},
		},
	}
}

// NextAvailable returns the lowest-numbered free spot of the category. It is
// read-only; callers that intend to claim the spot must go through Allocate.
func (u *SpotAllocatorUseCase) NextAvailable(ctx context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error) {
	if _, ok := u.locks[category]; !ok {
		return entities.ParkingSpot{}, ErrUnknownCategory
	}
	spot, err := u.repo.NextAvailable(ctx, category)
	if err != nil {
		return entities.ParkingSpot{}, err
	}
	if spot.ID == 0 {
		return entities.ParkingSpot{}, ErrNoAvailableSpot
	}
	return spot, nil
}

func (u *SpotAllocatorUseCase) Occupy(ctx context.Context, spotID int) error {
	return u.repo.SetAvailability(ctx, spotID, false)
}

func (u *SpotAllocatorUseCase) Release(ctx context.Context, spotID int) error {
	return u.repo.SetAvailability(ctx, spotID, true)
}

// Allocate selects and claims the lowest-numbered free spot of the category
// as one step.
func (u *SpotAllocatorUseCase) Allocate(ctx context.Context, category entities.VehicleCategory) (entities.ParkingSpot, error) {
	lock, ok := u.locks[category]
	if !ok {
		return entities.ParkingSpot{}, ErrUnknownCategory
	}

	lock.Lock()
	defer lock.Unlock()

	spot, err := u.NextAvailable(ctx, category)
	if err != nil {
		return entities.ParkingSpot{}, err
	}
	if err := u.Occupy(ctx, spot.ID); err != nil {
		log.Printf("[allocator][usecase] occupy failed spot_id=%d err=%v", spot.ID, err)
		return entities.ParkingSpot{}, err
	}
	spot.Available = false
	return spot, nil
}

func (u *SpotAllocatorUseCase) TotalCount(ctx context.Context) (int, error) {
	return u.repo.TotalCount(ctx)
}

func (u *SpotAllocatorUseCase) AvailableCount(ctx context.Context) (int, error) {
	return u.repo.AvailableCount(ctx)
}
