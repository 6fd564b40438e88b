package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"federapay/internal/adapter/http/handlers/mocks"
	"federapay/internal/domain/entities"
	"federapay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func webhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/gateway/webhook", h.HandleWebhook)
	return r
}

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"action":"payment.updated","data":{"id":"123"}}`

	t.Run("applied notification acks with bare ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconcileUseCase(ctrl)
		r := webhookRouter(NewWebhookHandler(rec))

		rec.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), []byte(body)).DoAndReturn(
			func(_ interface{}, headers map[string]string, _ []byte) (entities.Transaction, error) {
				if headers["X-Request-Id"] == "" {
					t.Fatalf("expected request headers forwarded, got %v", headers)
				}
				return entities.Transaction{ID: "tx-1", Status: entities.PaymentStatusPaid}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/webhook", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-Id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"status":"ok"}` {
			t.Fatalf("expected bare ack, got %s", w.Body.String())
		}
	})

	t.Run("rejected signature maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconcileUseCase(ctrl)
		r := webhookRouter(NewWebhookHandler(rec))

		rec.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrWebhookValidationFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown payment maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconcileUseCase(ctrl)
		r := webhookRouter(NewWebhookHandler(rec))

		rec.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unparseable body maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconcileUseCase(ctrl)
		r := webhookRouter(NewWebhookHandler(rec))

		rec.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("webhook missing data.id"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/webhook", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
