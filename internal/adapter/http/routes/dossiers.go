package routes

import (
	"eolia_backend/internal/adapter/http/handlers"
	"eolia_backend/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addStoreRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/intent", paymentHandler.CreatePaymentIntent)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}
}

func addDossierRoutes(rg *gin.RouterGroup, dossierHandler *handlers.DossierHandler, installationHandler *handlers.InstallationHandler, documentHandler *handlers.DocumentHandler) {
	order := rg.Group(PathOrders+"/:order_id", middleware.RequireAuth())

	dossiers := order.Group("/dossiers")
	{
		dossiers.GET("", dossierHandler.ListDossiers)
		dossiers.GET("/:dossier_id", dossierHandler.GetDossier)
		dossiers.PUT("/:dossier_id", dossierHandler.UpdateDossier)
		dossiers.GET("/:dossier_id/events", dossierHandler.GetEvents)

		dossiers.POST("/:dossier_id/documents/upload-url", documentHandler.CreateUploadURL)
		dossiers.POST("/:dossier_id/documents", documentHandler.AttachDocument)
		dossiers.GET("/:dossier_id/documents", documentHandler.ListDocuments)
		dossiers.DELETE("/:dossier_id/documents/:document_id", documentHandler.RemoveDocument)
	}

	installation := order.Group("/installation")
	{
		installation.POST("/vt", installationHandler.SubmitTechnicalVisit)
		installation.POST("/send-to-be", installationHandler.SendToEngineering)
	}
}
