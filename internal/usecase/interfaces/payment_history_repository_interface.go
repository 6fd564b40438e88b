package interfaces

import (
	"context"

	"federapay/internal/domain/entities"
)

// IPaymentHistoryRepository abstracts DynamoDB persistence for the append-only
// PaymentHistory audit trail.

type IPaymentHistoryRepository interface {
	Append(ctx context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error)
	ListByTransactionID(ctx context.Context, transactionID string) ([]entities.PaymentHistory, error)
}
