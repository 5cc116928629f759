package main

import (
	_ "entregaswoo/docs"
	"entregaswoo/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EntregasWoo API
// @version         1.0
// @description     Delivery-order management for WooCommerce storefronts: webhook ingest, courier dispatch and payment reconciliation, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
