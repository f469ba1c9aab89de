package main

import (
	"log"

	_ "flex_billing/docs"
	"flex_billing/internal/adapter/http/routes"
	"flex_billing/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Flex Billing API
// @version         1.0
// @description     Order placement, refunds and recurring flex plan billing.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
