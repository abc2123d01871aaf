package main

import (
	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina API
// @version         1.0
// @description     Workshop management (customers, vehicles, service orders, inventory, finance) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
