package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"federapay/internal/adapter/http/handlers/mocks"
	"federapay/internal/domain/entities"
	"federapay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments", h.CreatePayment)
	r.GET("/v1/payments", h.GetPayment)
	r.GET("/v1/payments/history", h.ListHistory)
	r.POST("/v1/payments/refund", h.RefundPayment)
	r.GET("/v1/payments/installments", h.GetInstallmentOptions)
	return r
}

const createPayload = `{
	"amount": "150.00",
	"payment_method": "pix",
	"entity_type": "event_registration",
	"entity_id": "evt-1",
	"customer": {"name": "Ana Souza", "email": "ana@test.com", "document": "12345678901"}
}`

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrInvalidPaymentMethod)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing gateway config maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrNoActiveGatewayConfig)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("provider failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrProviderCallFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns artifacts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, cmd usecase.CreatePaymentCommand) (entities.Transaction, error) {
				if !cmd.Amount.Equal(decimal.RequireFromString("150.00")) {
					t.Fatalf("amount parsed incorrectly: %s", cmd.Amount)
				}
				return entities.Transaction{
					ID: "tx-1", Protocol: "EVT-20260830-1234",
					EntityType: entities.EntityTypeEventRegistration, EntityID: "evt-1",
					Amount: cmd.Amount, Currency: entities.DefaultCurrency,
					PaymentMethod: entities.PaymentMethodPix,
					Status:        entities.PaymentStatusPending,
					ExternalID:    "123",
					Metadata:      map[string]string{entities.MetadataKeyQRCode: "qr-data"},
					CreatedAt:     now, UpdatedAt: now,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["protocol"] != "EVT-20260830-1234" || body["qr_code"] != "qr-data" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["amount"] != "150.00" {
			t.Fatalf("expected decimal string amount, got %v", body["amount"])
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetPayment(gomock.Any(), "missing").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments?id=missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetPayment(gomock.Any(), "tx-1").Return(entities.Transaction{
			ID: "tx-1", Status: entities.PaymentStatusPaid, Amount: decimal.RequireFromString("99.90"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments?id=tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "PAID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_RefundPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not refundable maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().RefundPayment(gomock.Any(), "tx-1").Return(entities.Transaction{}, usecase.ErrTransactionNotRefundable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/refund?id=tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().RefundPayment(gomock.Any(), "tx-1").Return(entities.Transaction{
			ID: "tx-1", Status: entities.PaymentStatusRefunded, Amount: decimal.RequireFromString("50"),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/refund?id=tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().ListHistory(gomock.Any(), "tx-1").Return([]entities.PaymentHistory{
		{ID: "h-1", TransactionID: "tx-1", Status: entities.PaymentStatusPending, Description: "payment created with protocol EVT-20260830-1234"},
		{ID: "h-2", TransactionID: "tx-1", Status: entities.PaymentStatusPaid, Description: "status changed to PAID via webhook"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/history?id=tx-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[1]["status"] != "PAID" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPaymentHandler_GetInstallmentOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/installments?amount=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		amount := decimal.RequireFromString("300.00")
		uc.EXPECT().GetInstallmentOptions(gomock.Any(), amount, entities.PaymentMethodCreditCard, entities.EntityTypeEventRegistration).Return(
			[]entities.InstallmentOption{entities.NewInstallmentOption(3, amount)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/installments?amount=300.00&payment_method=credit_card&entity_type=event_registration", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["installment_amount"] != "100.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
