package main

import (
	_ "parkhub/docs"
	"parkhub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ParkHub API
// @version         1.0
// @description     Parking facility service (spot allocation, tickets, fares) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
