package usecase

import (
	"context"
	"errors"
	"testing"

	"federapay/internal/domain/entities"
	mock_interfaces "federapay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reconcileFixture struct {
	transactions *mock_interfaces.MockITransactionRepository
	history      *mock_interfaces.MockIPaymentHistoryRepository
	configs      *mock_interfaces.MockIGatewayConfigRepository
	adapter      *mock_interfaces.MockIGatewayAdapter
	uc           *ReconcileUseCase
}

func newReconcileFixture(ctrl *gomock.Controller) *reconcileFixture {
	f := &reconcileFixture{
		transactions: mock_interfaces.NewMockITransactionRepository(ctrl),
		history:      mock_interfaces.NewMockIPaymentHistoryRepository(ctrl),
		configs:      mock_interfaces.NewMockIGatewayConfigRepository(ctrl),
		adapter:      mock_interfaces.NewMockIGatewayAdapter(ctrl),
	}
	selector := NewGatewaySelector(f.configs)
	f.uc = NewReconcileUseCase(f.transactions, f.history, f.configs, selector, staticFactory(f.adapter))
	return f
}

func TestReconcileUseCase_ReconcileByID(t *testing.T) {
	cfg := entities.GatewayConfig{ID: "cfg-1", Provider: "mercadopago"}

	t.Run("unknown transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		f.transactions.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Transaction{}, nil)

		_, err := f.uc.ReconcileByID(context.Background(), "missing")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("terminal status short-circuits without provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		paid := entities.Transaction{ID: "tx-1", ExternalID: "123", Status: entities.PaymentStatusPaid}
		f.transactions.EXPECT().GetByID(gomock.Any(), "tx-1").Return(paid, nil)

		tx, err := f.uc.ReconcileByID(context.Background(), "tx-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID untouched, got %s", tx.Status)
		}
	})

	t.Run("status change is written once with a history entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		open := entities.Transaction{ID: "tx-1", ExternalID: "123", GatewayConfigID: "cfg-1", Status: entities.PaymentStatusPending}

		f.transactions.EXPECT().GetByID(gomock.Any(), "tx-1").Return(open, nil)
		f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
		f.adapter.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(entities.PaymentStatusPaid, nil)
		f.transactions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
		f.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error) {
				if h.TransactionID != "tx-1" || h.Status != entities.PaymentStatusPaid {
					t.Fatalf("unexpected history entry: %+v", h)
				}
				return h, nil
			})

		tx, err := f.uc.ReconcileByID(context.Background(), "tx-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID, got %s", tx.Status)
		}
	})

	t.Run("unchanged status writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		open := entities.Transaction{ID: "tx-1", ExternalID: "123", GatewayConfigID: "cfg-1", Status: entities.PaymentStatusPending}

		f.transactions.EXPECT().GetByID(gomock.Any(), "tx-1").Return(open, nil)
		f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
		f.adapter.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(entities.PaymentStatusPending, nil)
		// No Update / Append expectations: any write fails the test.

		if _, err := f.uc.ReconcileByID(context.Background(), "tx-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("history failure does not fail reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		open := entities.Transaction{ID: "tx-1", ExternalID: "123", GatewayConfigID: "cfg-1", Status: entities.PaymentStatusPending}

		f.transactions.EXPECT().GetByID(gomock.Any(), "tx-1").Return(open, nil)
		f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
		f.adapter.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(entities.PaymentStatusPaid, nil)
		f.transactions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
		f.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{}, errors.New("table throttled"))

		tx, err := f.uc.ReconcileByID(context.Background(), "tx-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID despite audit failure, got %s", tx.Status)
		}
	})
}

func TestReconcileUseCase_HandleWebhook(t *testing.T) {
	cfg := entities.GatewayConfig{ID: "cfg-1", Provider: "mercadopago", Priority: 1, Active: true}
	headers := map[string]string{"x-request-id": "req-1"}
	body := []byte(`{"action":"payment.updated","data":{"id":"123"}}`)

	t.Run("rejected signature never touches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)

		f.configs.EXPECT().ListActive(gomock.Any()).Return([]entities.GatewayConfig{cfg}, nil)
		f.adapter.EXPECT().ValidateWebhook(headers, body).Return(false)
		// No GetByExternalID / Update / Append expectations on purpose.

		_, err := f.uc.HandleWebhook(context.Background(), headers, body)
		if !errors.Is(err, ErrWebhookValidationFailed) {
			t.Fatalf("expected ErrWebhookValidationFailed, got %v", err)
		}
	})

	t.Run("valid webhook settles the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		open := entities.Transaction{ID: "tx-1", ExternalID: "123", GatewayConfigID: "cfg-1", Status: entities.PaymentStatusPending}

		f.configs.EXPECT().ListActive(gomock.Any()).Return([]entities.GatewayConfig{cfg}, nil)
		f.adapter.EXPECT().ValidateWebhook(headers, body).Return(true)
		f.adapter.EXPECT().ParseWebhookData(body).Return(entities.WebhookEvent{ExternalID: "123", EventType: "payment.updated"}, nil)
		f.transactions.EXPECT().GetByExternalID(gomock.Any(), "123").Return(open, nil)
		f.adapter.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(entities.PaymentStatusPaid, nil)
		f.transactions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
		f.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{}, nil)

		tx, err := f.uc.HandleWebhook(context.Background(), headers, body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected PAID, got %s", tx.Status)
		}
	})

	t.Run("webhook for unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)

		f.configs.EXPECT().ListActive(gomock.Any()).Return([]entities.GatewayConfig{cfg}, nil)
		f.adapter.EXPECT().ValidateWebhook(headers, body).Return(true)
		f.adapter.EXPECT().ParseWebhookData(body).Return(entities.WebhookEvent{ExternalID: "999"}, nil)
		f.transactions.EXPECT().GetByExternalID(gomock.Any(), "999").Return(entities.Transaction{}, nil)

		_, err := f.uc.HandleWebhook(context.Background(), headers, body)
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("stale terminal transaction is left untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReconcileFixture(ctrl)
		refunded := entities.Transaction{ID: "tx-1", ExternalID: "123", GatewayConfigID: "cfg-1", Status: entities.PaymentStatusRefunded}

		f.configs.EXPECT().ListActive(gomock.Any()).Return([]entities.GatewayConfig{cfg}, nil)
		f.adapter.EXPECT().ValidateWebhook(headers, body).Return(true)
		f.adapter.EXPECT().ParseWebhookData(body).Return(entities.WebhookEvent{ExternalID: "123"}, nil)
		f.transactions.EXPECT().GetByExternalID(gomock.Any(), "123").Return(refunded, nil)
		f.adapter.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(entities.PaymentStatusPaid, nil)
		// Out-of-order PAID after REFUNDED: no write, no history.

		tx, err := f.uc.HandleWebhook(context.Background(), headers, body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Status != entities.PaymentStatusRefunded {
			t.Fatalf("expected REFUNDED preserved, got %s", tx.Status)
		}
	})
}

func TestReconcileUseCase_ApplyProviderResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReconcileFixture(ctrl)

	pending := entities.Transaction{ID: "tx-1", Status: entities.PaymentStatusPending,
		Metadata: map[string]string{"origin": "checkout"}}

	f.transactions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
	f.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.PaymentHistory{}, nil)

	tx, err := f.uc.ApplyProviderResult(context.Background(), pending, entities.PaymentResult{
		ExternalID:     "123",
		Status:         entities.PaymentStatusProcessing,
		ProviderStatus: "authorized",
		PaymentURL:     "https://mp.test/ticket",
		QRCode:         "qr-data",
	}, "create")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ExternalID != "123" || tx.PaymentURL != "https://mp.test/ticket" {
		t.Fatalf("expected provider linkage, got %+v", tx)
	}
	if tx.Metadata["origin"] != "checkout" || tx.Metadata[entities.MetadataKeyQRCode] != "qr-data" {
		t.Fatalf("expected merged metadata, got %v", tx.Metadata)
	}
	if tx.Status != entities.PaymentStatusProcessing {
		t.Fatalf("expected PROCESSING, got %s", tx.Status)
	}
}
