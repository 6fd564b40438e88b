package routes

import (
	"log"
	"strconv"

	_ "federapay/docs" // This will be auto-generated
	"federapay/internal/adapter/http/handlers"
	repository2 "federapay/internal/adapter/persistence/repository"
	"federapay/internal/infrastructure/database"
	"federapay/internal/infrastructure/payments"
	"federapay/internal/usecase"

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

	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	historyRepo := repository2.NewPaymentHistoryDynamoRepository(ddb)
	configRepo := repository2.NewEnvSeededGatewayConfigRepository(repository2.NewGatewayConfigDynamoRepository(ddb))

	selector := usecase.NewGatewaySelector(configRepo)
	reconcileUseCase := usecase.NewReconcileUseCase(transactionRepo, historyRepo, configRepo, selector, payments.NewGatewayForConfig)
	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, historyRepo, selector, reconcileUseCase, payments.NewGatewayForConfig)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconcileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
