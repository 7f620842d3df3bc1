package routes

import (
	"log"
	"strconv"

	_ "pawart_studio/docs" // This will be auto-generated
	"pawart_studio/internal/adapter/http/handlers"
	repository2 "pawart_studio/internal/adapter/persistence/repository"
	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/infrastructure/artgen"
	"pawart_studio/internal/infrastructure/config"
	"pawart_studio/internal/infrastructure/database"
	"pawart_studio/internal/infrastructure/notifications"
	"pawart_studio/internal/infrastructure/payments"
	"pawart_studio/internal/usecase"
	"pawart_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository2.NewCheckoutSessionDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	pendingRepo := repository2.NewPendingPaymentDynamoRepository(ddb)

	pricingUseCase := usecase.NewPricingUseCase(config.PricingFromEnv())
	shippingUseCase := usecase.NewShippingUseCase(config.ShippingFromEnv())

	providers := map[entities.Rail]interfaces.IPaymentProvider{}
	if payphone, err := payments.NewPayphoneGateway(); err != nil {
		log.Printf("Payphone gateway not configured: %v", err)
	} else {
		providers[entities.RailCardEC] = payphone
	}
	if wompi, err := payments.NewWompiGateway(); err != nil {
		log.Printf("Wompi gateway not configured: %v", err)
	} else {
		providers[entities.RailCardCO] = wompi
	}

	var notifier interfaces.INotifier
	if telegram, err := notifications.NewTelegramNotifier(); err != nil {
		log.Printf("Telegram notifier not configured: %v", err)
	} else {
		notifier = telegram
	}

	var generator interfaces.IArtworkGenerator
	if gemini, err := artgen.NewGeminiGenerator(); err != nil {
		log.Printf("Gemini generator not configured: %v", err)
	} else {
		generator = gemini
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(sessionRepo, orderRepo, pendingRepo, providers, pricingUseCase, shippingUseCase, notifier)
	artworkUseCase := usecase.NewArtworkUseCase(generator)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	artworkHandler := handlers.NewArtworkHandler(artworkUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, artworkHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
