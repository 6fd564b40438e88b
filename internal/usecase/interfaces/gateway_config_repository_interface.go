package interfaces

import (
	"context"

	"federapay/internal/domain/entities"
)

// IGatewayConfigRepository abstracts DynamoDB persistence for GatewayConfig.
//
// Configs are administered externally; the core only reads them.

type IGatewayConfigRepository interface {
	GetByID(ctx context.Context, id string) (entities.GatewayConfig, error)
	ListActive(ctx context.Context) ([]entities.GatewayConfig, error)
}
