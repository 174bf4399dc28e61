package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "sitebill/docs" // generated swagger spec
	"sitebill/internal/adapter/http/handlers"
	"sitebill/internal/adapter/persistence/repository"
	"sitebill/internal/infrastructure/database"
	"sitebill/internal/infrastructure/payments"
	"sitebill/internal/usecase"
	"sitebill/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB(context.Background())

	planRepo := repository.NewPlanDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	siteRepo := repository.NewSiteDynamoRepository(ddb)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	planUseCase := usecase.NewPlanUseCase(planRepo)
	clientUseCase := usecase.NewClientUseCase(userRepo, siteRepo, subscriptionRepo, planRepo, paymentRepo)
	reconciliationUseCase := usecase.NewReconciliationUseCase(subscriptionRepo, planRepo, paymentRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutGateway)

	planHandler := handlers.NewPlanHandler(planUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	adminHandler := handlers.NewAdminHandler(clientUseCase, reconciliationUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, planHandler, clientHandler, adminHandler, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
