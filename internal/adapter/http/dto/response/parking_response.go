package response

import (
	"time"

	"parkhub/internal/usecase"
)

type EntryResponse struct {
	TicketID         string    `json:"ticket_id"`
	SpotID           int       `json:"spot_id"`
	Category         string    `json:"category"`
	VehicleRegNumber string    `json:"vehicle_reg_number"`
	EntryTime        time.Time `json:"entry_time"`
	RecurringVehicle bool      `json:"recurring_vehicle"`
	WelcomeMessage   string    `json:"welcome_message"`
}

func FromEntryResult(r usecase.EntryResult) EntryResponse {
	msg := "Welcome to ParkHub"
	if r.RecurringVehicle {
		msg = "Welcome back to ParkHub! As a recurring user you get a 5% discount."
	}
	return EntryResponse{
		TicketID:         r.TicketID,
		SpotID:           r.SpotID,
		Category:         string(r.Category),
		VehicleRegNumber: r.VehicleRegNumber,
		EntryTime:        r.EntryTime,
		RecurringVehicle: r.RecurringVehicle,
		WelcomeMessage:   msg,
	}
}

type ReceiptResponse struct {
	TicketID         string    `json:"ticket_id"`
	SpotID           int       `json:"spot_id"`
	VehicleRegNumber string    `json:"vehicle_reg_number"`
	EntryTime        time.Time `json:"entry_time"`
	ExitTime         time.Time `json:"exit_time"`
	Price            float64   `json:"price"`
	DiscountApplied  bool      `json:"discount_applied"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentID        string    `json:"payment_id,omitempty"`
}

func FromReceipt(r usecase.Receipt) ReceiptResponse {
	return ReceiptResponse{
		TicketID:         r.TicketID,
		SpotID:           r.SpotID,
		VehicleRegNumber: r.VehicleRegNumber,
		EntryTime:        r.EntryTime,
		ExitTime:         r.ExitTime,
		Price:            r.Price,
		DiscountApplied:  r.DiscountApplied,
		PaymentStatus:    r.PaymentStatus,
		PaymentID:        r.PaymentID,
	}
}

// OccupancyResponse reports facility utilization for the dashboard.
type OccupancyResponse struct {
	TotalSpots     int `json:"total_spots"`
	AvailableSpots int `json:"available_spots"`
	OccupiedSpots  int `json:"occupied_spots"`
}
