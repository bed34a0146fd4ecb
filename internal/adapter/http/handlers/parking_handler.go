package handlers

import (
	"errors"
	"net/http"

	request "parkhub/internal/adapter/http/dto/request"
	response "parkhub/internal/adapter/http/dto/response"
	"parkhub/internal/domain/entities"
	"parkhub/internal/usecase"
	"parkhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidParkingPayload = pkg.NewDomainErrorSimple("INVALID_PARKING_INPUT", "Invalid parking payload", http.StatusBadRequest)
)

// ParkingHandler handles the gate-facing entry and exit requests.

type ParkingHandler struct {
	usecase usecase.IParkingUseCase
}

func NewParkingHandler(uc usecase.IParkingUseCase) *ParkingHandler {
	return &ParkingHandler{usecase: uc}
}

// EnterVehicle allocates a spot for an incoming vehicle and opens a ticket.
func (h *ParkingHandler) EnterVehicle(c *gin.Context) {
	var payload request.EntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParkingPayload.HTTPStatus, errInvalidParkingPayload.ToHTTPError())
		return
	}

	category, err := payload.ResolveCategory()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown vehicle category", http.StatusBadRequest).ToHTTPError())
		return
	}

	reg := payload.ResolveVehicleRegNumber()
	if reg == "" {
		c.JSON(errInvalidParkingPayload.HTTPStatus, errInvalidParkingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ProcessEntry(c.Request.Context(), reg, category)
	if err != nil {
		appErr := mapParkingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEntryResult(result))
}

// ExitVehicle settles the vehicle's open ticket and frees its spot.
func (h *ParkingHandler) ExitVehicle(c *gin.Context) {
	var payload request.ExitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParkingPayload.HTTPStatus, errInvalidParkingPayload.ToHTTPError())
		return
	}

	reg := payload.ResolveVehicleRegNumber()
	if reg == "" {
		c.JSON(errInvalidParkingPayload.HTTPStatus, errInvalidParkingPayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.ProcessExit(c.Request.Context(), reg)
	if err != nil {
		appErr := mapParkingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipt(receipt))
}

func mapParkingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleRegNumber), errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCategory), errors.Is(err, entities.ErrUnknownVehicleCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown vehicle category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoAvailableSpot):
		return pkg.NewDomainErrorSimple("NO_AVAILABLE_SPOT", "No available spot for this vehicle category", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "No open ticket for this vehicle", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
