package routes

import (
	"federapay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.GetPayment)
		payments.GET("/history", paymentHandler.ListHistory)
		payments.POST("/refund", paymentHandler.RefundPayment)
		payments.GET("/installments", paymentHandler.GetInstallmentOptions)

		// Notificacoes do gateway.
		payments.POST("/gateway/webhook", webhookHandler.HandleWebhook)
	}
}
