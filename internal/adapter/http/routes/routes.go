package routes

import (
	"log"
	"strconv"

	_ "learnhub/docs" // This will be auto-generated
	"learnhub/internal/adapter/http/handlers"
	repository2 "learnhub/internal/adapter/persistence/repository"
	"learnhub/internal/config"
	"learnhub/internal/infrastructure/database"
	"learnhub/internal/infrastructure/payments"
	"learnhub/internal/usecase"

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
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	purchaseRepo := repository2.NewPurchaseDynamoRepository(ddb)
	courseRepo := repository2.NewCourseDynamoRepository(ddb)
	lectureRepo := repository2.NewLectureDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	gateway := payments.NewChapaGateway(cfg.Chapa)

	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, courseRepo, lectureRepo, userRepo, gateway, cfg.Chapa)
	webhookUseCase := usecase.NewWebhookUseCase(gateway, purchaseRepo, courseRepo, lectureRepo, userRepo)

	purchaseHandler := handlers.NewPurchaseHandler(purchaseUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	root := router.Group("")
	addPingRoutes(root)
	addPurchaseRoutes(root, purchaseHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
