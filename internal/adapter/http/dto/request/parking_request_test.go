package request

import (
	"errors"
	"testing"

	"parkhub/internal/domain/entities"
)

func TestEntryRequest_ResolveCategory(t *testing.T) {
	t.Run("accepts known categories in any case", func(t *testing.T) {
		for in, want := range map[string]entities.VehicleCategory{
			"CAR":    entities.VehicleCategoryCar,
			"car":    entities.VehicleCategoryCar,
			" Bike ": entities.VehicleCategoryBike,
		} {
			got, err := (EntryRequest{Category: in}).ResolveCategory()
			if err != nil {
				t.Fatalf("category %q: unexpected error: %v", in, err)
			}
			if got != want {
				t.Fatalf("category %q: expected %s, got %s", in, want, got)
			}
		}
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := (EntryRequest{Category: "TRUCK"}).ResolveCategory()
		if !errors.Is(err, entities.ErrUnknownVehicleCategory) {
			t.Fatalf("expected ErrUnknownVehicleCategory, got %v", err)
		}
	})
}

func TestRequests_ResolveVehicleRegNumber(t *testing.T) {
	if got := (EntryRequest{VehicleRegNumber: "  ABCDEF "}).ResolveVehicleRegNumber(); got != "ABCDEF" {
		t.Fatalf("expected trimmed registration, got %q", got)
	}
	if got := (ExitRequest{VehicleRegNumber: "\tGHIJKL\n"}).ResolveVehicleRegNumber(); got != "GHIJKL" {
		t.Fatalf("expected trimmed registration, got %q", got)
	}
	if got := (ExitRequest{VehicleRegNumber: "   "}).ResolveVehicleRegNumber(); got != "" {
		t.Fatalf("expected empty registration, got %q", got)
	}
}
