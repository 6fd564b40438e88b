package interfaces

import (
	"context"

	"federapay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IGatewayAdapter abstracts external payment providers (Mercado Pago, sandbox
// simulator, ...). One implementation per provider, selected at runtime by
// GatewayConfig.Provider; each owns a private mapping table from the
// provider's status vocabulary onto entities.PaymentStatus.
//
// Contract notes:
//   - CreatePayment performs exactly one outbound provider call and never
//     retries; retry policy belongs to the caller.
//   - GetPaymentStatus and RefundPayment are idempotent at the provider and
//     safe to retry.
//   - ValidateWebhook must reject unsigned notifications whenever the gateway
//     config carries a webhook secret.

type IGatewayAdapter interface {
	CreatePayment(ctx context.Context, input entities.CreatePaymentInput) (entities.PaymentResult, error)
	GetPaymentStatus(ctx context.Context, externalID string) (entities.PaymentStatus, error)
	RefundPayment(ctx context.Context, externalID string) (entities.PaymentResult, error)
	ValidateWebhook(headers map[string]string, body []byte) bool
	ParseWebhookData(body []byte) (entities.WebhookEvent, error)
	GetInstallmentOptions(ctx context.Context, amount decimal.Decimal, method entities.PaymentMethod, cardPrefix string) []entities.InstallmentOption
}
