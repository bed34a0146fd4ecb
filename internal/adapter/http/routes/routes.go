package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "parkhub/docs" // This will be auto-generated
	"parkhub/internal/adapter/http/handlers"
	"parkhub/internal/adapter/http/middleware"
	repository2 "parkhub/internal/adapter/persistence/repository"
	"parkhub/internal/infrastructure/database"
	"parkhub/internal/infrastructure/payments"
	"parkhub/internal/infrastructure/telemetry"
	"parkhub/internal/usecase"
	"parkhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	if err := database.EnsureParkingTables(ctx, ddb); err != nil {
		log.Fatalf("Failed to prepare parking tables: %v", err)
	}

	spotRepo := repository2.NewSpotDynamoRepository(ddb)
	ticketRepo := repository2.NewTicketDynamoRepository(ddb)

	allocator := usecase.NewSpotAllocatorUseCase(spotRepo)
	ledger := usecase.NewTicketLedgerUseCase(ticketRepo)
	fare := usecase.NewFareUseCase()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var parkingUseCase usecase.IParkingUseCase = usecase.NewParkingUseCase(allocator, ledger, fare, paymentGateway, nil)

	// Telemetry is best effort: without a collector the service still runs,
	// just untraced.
	if tp, err := telemetry.NewTelemetryProvider(ctx); err != nil {
		log.Printf("Telemetry not configured: %v", err)
	} else {
		instrumented, err := usecase.NewInstrumentedParkingUseCase(parkingUseCase, tp.Tracer(), tp.Meter())
		if err != nil {
			log.Printf("Telemetry instrumentation failed: %v", err)
		} else {
			parkingUseCase = instrumented
		}
	}

	parkingHandler := handlers.NewParkingHandler(parkingUseCase)
	facilityHandler := handlers.NewFacilityHandler(allocator)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addParkingRoutes(v1, parkingHandler, facilityHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())
}
