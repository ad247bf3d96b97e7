package main

import (
	_ "github.com/mobbexco/woocommerce-marketplace/docs"
	"github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mobbex Marketplace Split API
// @version         1.0
// @description     Marketplace payment split for Mobbex checkouts (Dokan, WCFM or stand-alone) backed by DynamoDB.
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
