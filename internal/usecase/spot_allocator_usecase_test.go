package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"parkhub/internal/domain/entities"
	mock_interfaces "parkhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSpotAllocatorUseCase_NextAvailable(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		uc := NewSpotAllocatorUseCase(nil)
		_, err := uc.NextAvailable(context.Background(), entities.VehicleCategory("TRUCK"))
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISpotRepository(ctrl)
		uc := NewSpotAllocatorUseCase(repo)

		repo.EXPECT().NextAvailable(gomock.Any(), entities.VehicleCategoryCar).Return(entities.ParkingSpot{}, errors.New("db"))

		_, err := uc.NextAvailable(context.Background(), entities.VehicleCategoryCar)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("no free spot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISpotRepository(ctrl)
		uc := NewSpotAllocatorUseCase(repo)

		repo.EXPECT().NextAvailable(gomock.Any(), entities.VehicleCategoryBike).Return(entities.ParkingSpot{}, nil)

		_, err := uc.NextAvailable(context.Background(), entities.VehicleCategoryBike)
		if !errors.Is(err, ErrNoAvailableSpot) {
			t.Fatalf("expected ErrNoAvailableSpot, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISpotRepository(ctrl)
		uc := NewSpotAllocatorUseCase(repo)

		repo.EXPECT().NextAvailable(gomock.Any(), entities.VehicleCategoryCar).
			Return(entities.ParkingSpot{ID: 1, Category: entities.VehicleCategoryCar, Available: true}, nil)

		spot, err := uc.NextAvailable(context.Background(), entities.VehicleCategoryCar)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spot.ID != 1 {
			t.Fatalf("expected spot 1, got %+v", spot)
		}
	})
}

func TestSpotAllocatorUseCase_Allocate(t *testing.T) {
	t.Run("claims the selected spot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISpotRepository(ctrl)
		uc := NewSpotAllocatorUseCase(repo)

		repo.EXPECT().NextAvailable(gomock.Any(), entities.VehicleCategoryCar).
			Return(entities.ParkingSpot{ID: 2, Category: entities.VehicleCategoryCar, Available: true}, nil)
		repo.EXPECT().SetAvailability(gomock.Any(), 2, false).Return(nil)

		spot, err := uc.Allocate(context.Background(), entities.VehicleCategoryCar)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spot.ID != 2 || spot.Available {
			t.Fatalf("expected claimed spot 2, got %+v", spot)
		}
	})

	t.Run("claim failure is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISpotRepository(ctrl)
		uc := NewSpotAllocatorUseCase(repo)

		repo.EXPECT().NextAvailable(gomock.Any(), entities.VehicleCategoryCar).
			Return(entities.ParkingSpot{ID: 2, Category: entities.VehicleCategoryCar, Available: true}, nil)
		repo.EXPECT().SetAvailability(gomock.Any(), 2, false).Return(errors.New("db"))

		_, err := uc.Allocate(context.Background(), entities.VehicleCategoryCar)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("drains the category then reports full", func(t *testing.T) {
		repo := newFakeSpotRepo(3, 2)
		uc := NewSpotAllocatorUseCase(repo)
		ctx := context.Background()

		seen := map[int]bool{}
		for i := 0; i < 3; i++ {
			spot, err := uc.Allocate(ctx, entities.VehicleCategoryCar)
			if err != nil {
				t.Fatalf("allocation %d failed: %v", i, err)
			}
			if seen[spot.ID] {
				t.Fatalf("spot %d handed out twice", spot.ID)
			}
			seen[spot.ID] = true
		}

		if _, err := uc.Allocate(ctx, entities.VehicleCategoryCar); !errors.Is(err, ErrNoAvailableSpot) {
			t.Fatalf("expected ErrNoAvailableSpot, got %v", err)
		}

		// The bike pool is untouched by draining the car pool.
		if _, err := uc.Allocate(ctx, entities.VehicleCategoryBike); err != nil {
			t.Fatalf("bike allocation failed: %v", err)
		}
	})

	t.Run("concurrent entries never share a spot", func(t *testing.T) {
		const spots = 10
		const entries = 20

		repo := newFakeSpotRepo(spots, 0)
		uc := NewSpotAllocatorUseCase(repo)

		var mu sync.Mutex
		allocated := map[int]int{}
		full := 0

		var wg sync.WaitGroup
		for i := 0; i < entries; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				spot, err := uc.Allocate(context.Background(), entities.VehicleCategoryCar)
				mu.Lock()
				defer mu.Unlock()
				if errors.Is(err, ErrNoAvailableSpot) {
					full++
					return
				}
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				allocated[spot.ID]++
			}()
		}
		wg.Wait()

		if len(allocated) != spots || full != entries-spots {
			t.Fatalf("expected %d distinct spots and %d rejections, got %d and %d", spots, entries-spots, len(allocated), full)
		}
		for id, n := range allocated {
			if n != 1 {
				t.Fatalf("spot %d allocated %d times", id, n)
			}
		}
	})
}

func TestSpotAllocatorUseCase_OccupyReleaseRoundTrip(t *testing.T) {
	repo := newFakeSpotRepo(2, 0)
	uc := NewSpotAllocatorUseCase(repo)
	ctx := context.Background()

	before, err := uc.AvailableCount(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Occupy(ctx, 1); err != nil {
		t.Fatalf("occupy failed: %v", err)
	}
	during, err := uc.AvailableCount(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if during != before-1 {
		t.Fatalf("expected %d available, got %d", before-1, during)
	}

	if err := uc.Release(ctx, 1); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	after, err := uc.AvailableCount(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != before {
		t.Fatalf("expected %d available, got %d", before, after)
	}

	// Spot 1 is selectable again.
	spot, err := uc.NextAvailable(ctx, entities.VehicleCategoryCar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spot.ID != 1 {
		t.Fatalf("expected spot 1 back in the pool, got %+v", spot)
	}

	total, err := uc.TotalCount(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 spots, got %d", total)
	}
}
