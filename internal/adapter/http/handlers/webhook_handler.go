package handlers

import (
	"errors"
	"log"
	"net/http"

	"federapay/internal/usecase"
	"federapay/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives gateway payment notifications.

type WebhookHandler struct {
	reconciler usecase.IReconcileUseCase
}

func NewWebhookHandler(reconciler usecase.IReconcileUseCase) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// HandleWebhook validates and applies one provider notification. The body is
// acknowledged with a bare ok so the provider stops retrying; the response
// never echoes transaction data back to the caller.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	tx, err := h.reconciler.HandleWebhook(c.Request.Context(), headers, body)
	if err != nil {
		log.Printf("[payment][handler] webhook failed err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook applied transaction_id=%s status=%s", tx.ID, tx.Status)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWebhookValidationFailed):
		return pkg.NewDomainErrorSimple("WEBHOOK_VALIDATION_FAILED", "Webhook signature validation failed", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveGatewayConfig):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "No payment gateway configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}
}
