package usecase

import (
	"context"
	"errors"
	"log"
	"sort"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"
)

// ErrNoActiveGatewayConfig is a configuration error: an operator problem,
// fatal and not retryable.
var ErrNoActiveGatewayConfig = errors.New("no active gateway configuration")

// GatewayFactory builds the adapter for a gateway configuration. Injected so
// usecases stay decoupled from concrete providers and tests can swap in mocks.
type GatewayFactory func(cfg entities.GatewayConfig) (interfaces.IGatewayAdapter, error)

// GatewaySelector picks the gateway configuration for a payment attempt.

type GatewaySelector struct {
	configs interfaces.IGatewayConfigRepository
}

func NewGatewaySelector(configs interfaces.IGatewayConfigRepository) *GatewaySelector {
	return &GatewaySelector{configs: configs}
}

// Select returns the highest-priority active config whose entity types contain
// the requested type (and, when a method is given, whose allow-list permits
// it). When no config matches the entity type it falls back to the
// highest-priority active config regardless of affinity.
func (s *GatewaySelector) Select(ctx context.Context, entityType entities.EntityType, method entities.PaymentMethod) (entities.GatewayConfig, error) {
	configs, err := s.active(ctx)
	if err != nil {
		return entities.GatewayConfig{}, err
	}

	for _, cfg := range configs {
		if cfg.SupportsEntityType(entityType) && (method == "" || cfg.AllowsMethod(method)) {
			return cfg, nil
		}
	}

	for _, cfg := range configs {
		if method == "" || cfg.AllowsMethod(method) {
			log.Printf("[payment][selector] no config for entity_type=%s; falling back to gateway_config_id=%s", entityType, cfg.ID)
			return cfg, nil
		}
	}

	log.Printf("[payment][selector] no active gateway config entity_type=%s method=%s", entityType, method)
	return entities.GatewayConfig{}, ErrNoActiveGatewayConfig
}

// Default returns the highest-priority active config, used where no entity
// context exists yet (e.g. inbound webhook validation).
func (s *GatewaySelector) Default(ctx context.Context) (entities.GatewayConfig, error) {
	configs, err := s.active(ctx)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(configs) == 0 {
		return entities.GatewayConfig{}, ErrNoActiveGatewayConfig
	}
	return configs[0], nil
}

func (s *GatewaySelector) active(ctx context.Context) ([]entities.GatewayConfig, error) {
	configs, err := s.configs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].Priority > configs[j].Priority
	})
	return configs, nil
}
