package routes

import (
	"log"
	"strconv"

	_ "github.com/mobbexco/woocommerce-marketplace/docs" // This will be auto-generated
	"github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/handlers"
	"github.com/mobbexco/woocommerce-marketplace/internal/adapter/persistence/repository"
	"github.com/mobbexco/woocommerce-marketplace/internal/infrastructure/config"
	"github.com/mobbexco/woocommerce-marketplace/internal/infrastructure/database"
	"github.com/mobbexco/woocommerce-marketplace/internal/infrastructure/payments"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("invalid marketplace settings: %v", err)
	}
	log.Printf("[split][config] settings loaded integration=%q shipping_manager=%q custom_rules=%d",
		settings.Integration, settings.ShippingManager, len(settings.CustomShipping))

	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	vendorRepo := repository.NewVendorDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mobbexGateway, err := payments.NewMobbexGateway(settings.APIKey, settings.AccessToken)
	if err != nil {
		log.Printf("Mobbex gateway not configured: %v", err)
	} else {
		paymentGateway = mobbexGateway
	}

	checkoutUseCase := usecase.NewCheckoutSplitUseCase(orderRepo, catalogRepo, vendorRepo, settings)
	splitResponseUseCase := usecase.NewSplitResponseUseCase(orderRepo)
	unholdUseCase := usecase.NewUnholdUseCase(orderRepo, paymentGateway)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(splitResponseUseCase)
	operationHandler := handlers.NewOperationHandler(unholdUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSplitRoutes(v1, checkoutHandler, webhookHandler, operationHandler)
}

// setMiddlewares installs the request logger and a single panic handler.
func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
