package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "eolia_backend/docs" // This will be auto-generated
	"eolia_backend/internal/adapter/http/handlers"
	"eolia_backend/internal/adapter/http/middleware"
	repository2 "eolia_backend/internal/adapter/persistence/repository"
	"eolia_backend/internal/infrastructure/database"
	"eolia_backend/internal/infrastructure/payments"
	"eolia_backend/internal/infrastructure/storage"
	"eolia_backend/internal/usecase"
	"eolia_backend/internal/usecase/interfaces"

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

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	dossierRepo := repository2.NewDossierDynamoRepository(ddb)
	eventRepo := repository2.NewDossierEventDynamoRepository(ddb)
	documentRepo := repository2.NewDossierDocumentDynamoRepository(ddb)

	var documentStorage interfaces.IDocumentStorage
	s3Storage, err := storage.NewS3DocumentStorage(context.Background())
	if err != nil {
		log.Printf("Document storage not configured: %v", err)
	} else {
		documentStorage = s3Storage
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, dossierRepo, eventRepo)
	dossierUseCase := usecase.NewDossierUseCase(dossierRepo, eventRepo, orderRepo)
	installationUseCase := usecase.NewInstallationUseCase(dossierRepo, eventRepo, orderRepo, documentRepo)
	documentUseCase := usecase.NewDossierDocumentUseCase(documentRepo, dossierRepo, eventRepo, orderRepo, documentStorage)
	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	dossierHandler := handlers.NewDossierHandler(dossierUseCase)
	installationHandler := handlers.NewInstallationHandler(installationUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	v1.Use(middleware.Principal())
	addPingRoutes(v1)
	addStoreRoutes(v1, orderHandler, paymentHandler)
	addDossierRoutes(v1, dossierHandler, installationHandler, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
