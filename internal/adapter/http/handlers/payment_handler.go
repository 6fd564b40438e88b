package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "federapay/internal/adapter/http/dto/request"
	response "federapay/internal/adapter/http/dto/response"
	"federapay/internal/domain/entities"
	"federapay/internal/usecase"
	"federapay/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles HTTP requests for payment transactions.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment creates a transaction and charges it through the selected
// gateway.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := req.ToCommand()
	log.Printf("[payment][handler] create start entity_type=%s entity_id=%s method=%s", cmd.EntityType, cmd.EntityID, cmd.Method)

	created, err := h.usecase.CreatePayment(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] create failed entity_id=%s err=%v", cmd.EntityID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success transaction_id=%s protocol=%s status=%s", created.ID, created.Protocol, created.Status)

	c.JSON(http.StatusCreated, response.FromTransaction(created))
}

// GetPayment returns the current snapshot of a transaction, reconciling with
// the provider first when the status is still open.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] get start transaction_id=%s", id)

	tx, err := h.usecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed transaction_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListHistory returns the transaction's audit trail, oldest first.
func (h *PaymentHandler) ListHistory(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.ListHistory(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] history failed transaction_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentHistory(items))
}

// RefundPayment refunds a settled transaction through its original gateway.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund start transaction_id=%s", id)

	tx, err := h.usecase.RefundPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] refund failed transaction_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success transaction_id=%s status=%s", tx.ID, tx.Status)

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// GetInstallmentOptions lists card installment plans for an amount.
func (h *PaymentHandler) GetInstallmentOptions(c *gin.Context) {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.Query("amount")))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "amount query parameter must be a decimal", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(c.Query("payment_method"))))
	entityType := entities.EntityType(strings.ToLower(strings.TrimSpace(c.Query("entity_type"))))

	opts, err := h.usecase.GetInstallmentOptions(c.Request.Context(), amount, method, entityType)
	if err != nil {
		log.Printf("[payment][handler] installments failed method=%s err=%v", method, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallmentOptions(opts))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidEntityType),
		errors.Is(err, usecase.ErrMissingEntityID),
		errors.Is(err, usecase.ErrMissingCustomerIdentity),
		errors.Is(err, usecase.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotRefundable):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_REFUNDABLE", "Payment is not refundable", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveGatewayConfig),
		errors.Is(err, usecase.ErrGatewayConfigNotFound):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "No payment gateway configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrProviderCallFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Could not process payment, try again", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
