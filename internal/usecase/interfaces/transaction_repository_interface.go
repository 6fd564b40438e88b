package interfaces

import (
	"context"

	"federapay/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// Lookups that miss return a zero-value Transaction and a nil error; callers
// check ID == "". A GetItem with no match is not an error at the storage layer.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
}
