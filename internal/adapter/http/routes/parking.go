package routes

import (
	"parkhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathParking = "/parking"
)

func addParkingRoutes(rg *gin.RouterGroup, parkingHandler *handlers.ParkingHandler, facilityHandler *handlers.FacilityHandler) {
	parking := rg.Group(PathParking)
	{
		parking.POST("/entry", parkingHandler.EnterVehicle)
		parking.POST("/exit", parkingHandler.ExitVehicle)
		parking.GET("/occupancy", facilityHandler.GetOccupancy)
	}
}
