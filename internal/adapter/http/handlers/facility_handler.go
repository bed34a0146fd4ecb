package handlers

import (
	"net/http"

	response "parkhub/internal/adapter/http/dto/response"
	"parkhub/internal/usecase"
	"parkhub/pkg"

	"github.com/gin-gonic/gin"
)

// FacilityHandler serves facility-level read endpoints.

type FacilityHandler struct {
	allocator usecase.ISpotAllocatorUseCase
}

func NewFacilityHandler(allocator usecase.ISpotAllocatorUseCase) *FacilityHandler {
	return &FacilityHandler{allocator: allocator}
}

// GetOccupancy reports total, available and occupied spot counts.
func (h *FacilityHandler) GetOccupancy(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.allocator.TotalCount(ctx)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	available, err := h.allocator.AvailableCount(ctx)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OccupancyResponse{
		TotalSpots:     total,
		AvailableSpots: available,
		OccupiedSpots:  total - available,
	})
}
