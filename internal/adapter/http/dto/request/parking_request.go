package request

import (
	"strings"

	"parkhub/internal/domain/entities"
)

// EntryRequest is the gate-in payload. Category is the vehicle category as
// printed on the gate keypad (CAR or BIKE, case-insensitive).
type EntryRequest struct {
	VehicleRegNumber string `json:"vehicle_reg_number" binding:"required"`
	Category         string `json:"category" binding:"required"`
}

func (r EntryRequest) ResolveVehicleRegNumber() string {
	return strings.TrimSpace(r.VehicleRegNumber)
}

func (r EntryRequest) ResolveCategory() (entities.VehicleCategory, error) {
	return entities.ParseVehicleCategory(strings.ToUpper(strings.TrimSpace(r.Category)))
}

// ExitRequest is the gate-out payload; the vehicle is looked up by its
// registration number.
type ExitRequest struct {
	VehicleRegNumber string `json:"vehicle_reg_number" binding:"required"`
}

func (r ExitRequest) ResolveVehicleRegNumber() string {
	return strings.TrimSpace(r.VehicleRegNumber)
}
