package entities

import "time"

// Ticket records one occupancy episode, from entry to exit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_reg_number-index): vehicle_reg_number
//
// Lifecycle: created open (ExitTime nil, Price zero) when a vehicle enters;
// transitions once, irreversibly, to closed when the exit workflow records
// the exit time and the computed price. ExitTime never precedes EntryTime
// and Price is non-negative once closed.

type Ticket struct {
	ID               string          `json:"id"`
	SpotID           int             `json:"spot_id"`
	SpotCategory     VehicleCategory `json:"spot_category"`
	VehicleRegNumber string          `json:"vehicle_reg_number"`
	EntryTime        time.Time       `json:"entry_time"`
	ExitTime         *time.Time      `json:"exit_time,omitempty"`
	Price            float64         `json:"price"`
}

// Open reports whether the ticket still awaits its exit.
func (t Ticket) Open() bool {
	return t.ExitTime == nil
}
