package main

import (
	_ "learnhub/docs"
	"learnhub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Course Purchase API
// @version         1.0
// @description     Course purchase service (checkout sessions + payment webhook reconciliation) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated buyer id forwarded by the auth gateway.

func main() {
	routes.Run()
}
