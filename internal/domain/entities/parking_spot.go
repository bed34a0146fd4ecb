package entities

import "errors"

// VehicleCategory selects the hourly rate and which spot pool is searched.

type VehicleCategory string

const (
	VehicleCategoryCar  VehicleCategory = "CAR"
	VehicleCategoryBike VehicleCategory = "BIKE"
)

var ErrUnknownVehicleCategory = errors.New("unknown vehicle category")

// ParseVehicleCategory maps an external category string to the enumeration.
// The front end is expected to send only valid values; anything else is
// rejected here so it never reaches the workflows.
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	switch VehicleCategory(s) {
	case VehicleCategoryCar:
		return VehicleCategoryCar, nil
	case VehicleCategoryBike:
		return VehicleCategoryBike, nil
	default:
		return "", ErrUnknownVehicleCategory
	}
}

// ParkingSpot is a single physical parking space.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (category-index): category
//
// Invariants:
//   - ID and Category are fixed for the lifetime of the facility.
//   - Available is the only mutable field and is toggled exclusively by the
//     spot allocator.

type ParkingSpot struct {
	ID        int             `json:"id"`
	Category  VehicleCategory `json:"category"`
	Available bool            `json:"available"`
}
