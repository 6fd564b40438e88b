package payments

import (
	"fmt"
	"strings"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"
)

const ProviderMercadoPago = "mercadopago"

// NewGatewayForConfig builds the adapter for a gateway configuration.
//
// Sandbox configs always get the simulator: simulated approval logic must
// never be reachable from a live code path, so the switch happens here, before
// any provider-specific construction.
func NewGatewayForConfig(cfg entities.GatewayConfig) (interfaces.IGatewayAdapter, error) {
	if cfg.Sandbox {
		return NewSandboxGateway(cfg), nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderMercadoPago:
		return NewMercadoPagoGateway(cfg)
	default:
		return nil, fmt.Errorf("unknown payment provider %q (gateway_config_id=%s)", cfg.Provider, cfg.ID)
	}
}
