package main

import (
	_ "ipay_billing/docs"
	"ipay_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           iPay Billing Service API
// @version         1.0
// @description     Billing service backed by the Bank of Georgia iPay gateway.
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
