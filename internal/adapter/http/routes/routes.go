package routes

import (
	"log"
	"os"
	"strconv"

	_ "servease/docs" // This will be auto-generated
	"servease/internal/adapter/http/handlers"
	repository2 "servease/internal/adapter/persistence/repository"
	"servease/internal/infrastructure/database"
	"servease/internal/infrastructure/payments"
	"servease/internal/usecase"
	"servease/internal/usecase/interfaces"

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

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	providerRepo := repository2.NewProviderDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	moderationUseCase := usecase.NewModerationUseCase(providerRepo, serviceRepo, customerRepo)
	catalogUseCase := usecase.NewCatalogUseCase(categoryRepo, providerRepo, serviceRepo, customerRepo)
	bookingUseCase := usecase.NewBookingUseCase(
		bookingRepo, paymentRepo, serviceRepo, providerRepo, categoryRepo, customerRepo, reviewRepo,
		moderationUseCase,
		usecase.BookingConfig{StrictTransitions: strictTransitionsFromEnv()},
	)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingRepo, paymentGateway)
	reportUseCase := usecase.NewReportUseCase(bookingRepo, paymentRepo, serviceRepo, customerRepo, reviewRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	moderationHandler := handlers.NewModerationHandler(moderationUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, catalogHandler, bookingHandler, paymentHandler, reportHandler)
	addAdminRoutes(v1, catalogHandler, moderationHandler, reportHandler)
}

func strictTransitionsFromEnv() bool {
	strict, _ := strconv.ParseBool(os.Getenv("STRICT_TRANSITIONS"))
	return strict
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
