package usecase

import (
	"errors"
	"time"

	"parkhub/internal/domain/entities"
)

var (
	ErrInvalidDuration = errors.New("invalid parking duration")
	ErrUnknownCategory = errors.New("unknown vehicle category")
)

// Hourly rates per vehicle category.
const (
	CarRatePerHour  = 1.5
	BikeRatePerHour = 1.0
)

const (
	// Stays shorter than this are free of charge.
	freeParkingThresholdHours = 0.5
	// Allowance subtracted from every billable stay, in hours (29.9 minutes).
	// Deliberately not equal to the free-parking threshold; see the fare
	// tests for the resulting boundary behavior.
	discountedPeriodHours = 29.9 / 60.0
	// Recurring vehicles pay 95% of the computed fare.
	recurringDiscountFactor = 0.95
)

// IFareUseCase computes the fare for one occupancy episode.
//
// The computation is pure: no side effects, deterministic given inputs.

type IFareUseCase interface {
	CalculateFare(entryTime, exitTime time.Time, category entities.VehicleCategory, discountEligible bool) (float64, error)
}

type FareUseCase struct{}

var _ IFareUseCase = (*FareUseCase)(nil)

func NewFareUseCase() *FareUseCase {
	return &FareUseCase{}
}

// CalculateFare prices the interval [entryTime, exitTime).
//
// Rules:
//   - exitTime must be set and strictly after entryTime.
//   - Stays under 30 minutes are free.
//   - Longer stays are billed for (duration - 29.9min) at the category rate.
//   - Discount-eligible vehicles pay 95% of the result.
//   - The reported price is clamped at zero; the allowance subtraction can
//     otherwise go negative for stays just above the free threshold.
func (u *FareUseCase) CalculateFare(entryTime, exitTime time.Time, category entities.VehicleCategory, discountEligible bool) (float64, error) {
	if exitTime.IsZero() || !exitTime.After(entryTime) {
		return 0, ErrInvalidDuration
	}

	var ratePerHour float64
	switch category {
	case entities.VehicleCategoryCar:
		ratePerHour = CarRatePerHour
	case entities.VehicleCategoryBike:
		ratePerHour = BikeRatePerHour
	default:
		return 0, ErrUnknownCategory
	}

	durationInHours := exitTime.Sub(entryTime).Hours()
	if durationInHours < freeParkingThresholdHours {
		return 0, nil
	}

	price := (durationInHours - discountedPeriodHours) * ratePerHour
	if discountEligible {
		price *= recurringDiscountFactor
	}
	if price < 0 {
		price = 0
	}
	return price, nil
}
