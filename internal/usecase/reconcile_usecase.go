package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrGatewayConfigNotFound   = errors.New("gateway configuration not found")
	ErrWebhookValidationFailed = errors.New("webhook validation failed")
)

// IReconcileUseCase converges a transaction's canonical status from a
// provider-reported status. Webhook delivery and polling both land here, on
// the same mapping-and-apply path, so the two channels can never diverge.

type IReconcileUseCase interface {
	ReconcileByID(ctx context.Context, transactionID string) (entities.Transaction, error)
	HandleWebhook(ctx context.Context, headers map[string]string, body []byte) (entities.Transaction, error)
	ApplyProviderResult(ctx context.Context, tx entities.Transaction, result entities.PaymentResult, source string) (entities.Transaction, error)
}

type ReconcileUseCase struct {
	transactions interfaces.ITransactionRepository
	history      interfaces.IPaymentHistoryRepository
	configs      interfaces.IGatewayConfigRepository
	selector     *GatewaySelector
	newGateway   GatewayFactory
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	transactions interfaces.ITransactionRepository,
	history interfaces.IPaymentHistoryRepository,
	configs interfaces.IGatewayConfigRepository,
	selector *GatewaySelector,
	newGateway GatewayFactory,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		transactions: transactions,
		history:      history,
		configs:      configs,
		selector:     selector,
		newGateway:   newGateway,
	}
}

// ReconcileByID performs one poll tick: ask the provider for the current
// status and apply it. Safe to call repeatedly; an unchanged status is a
// no-op and a terminal status short-circuits before any provider call.
func (u *ReconcileUseCase) ReconcileByID(ctx context.Context, transactionID string) (entities.Transaction, error) {
	tx, err := u.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if tx.Status.IsTerminal() || tx.ExternalID == "" {
		return tx, nil
	}

	adapter, err := u.adapterFor(ctx, tx.GatewayConfigID)
	if err != nil {
		return tx, err
	}

	status, err := adapter.GetPaymentStatus(ctx, tx.ExternalID)
	if err != nil {
		return tx, fmt.Errorf("reconcile transaction_id=%s: %w", tx.ID, err)
	}

	return u.applyStatus(ctx, tx, status, "poll")
}

// HandleWebhook validates and applies one provider notification. Rejected
// webhooks never touch the store; providers own their own retry policy.
func (u *ReconcileUseCase) HandleWebhook(ctx context.Context, headers map[string]string, body []byte) (entities.Transaction, error) {
	cfg, err := u.selector.Default(ctx)
	if err != nil {
		return entities.Transaction{}, err
	}
	adapter, err := u.newGateway(cfg)
	if err != nil {
		return entities.Transaction{}, err
	}

	if !adapter.ValidateWebhook(headers, body) {
		log.Printf("[payment][reconcile] webhook rejected gateway_config_id=%s body_len=%d", cfg.ID, len(body))
		return entities.Transaction{}, ErrWebhookValidationFailed
	}

	event, err := adapter.ParseWebhookData(body)
	if err != nil {
		log.Printf("[payment][reconcile] webhook unparseable err=%v", err)
		return entities.Transaction{}, err
	}

	tx, err := u.transactions.GetByExternalID(ctx, event.ExternalID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		log.Printf("[payment][reconcile] webhook for unknown payment provider_payment_id=%s event=%s", event.ExternalID, event.EventType)
		return entities.Transaction{}, ErrTransactionNotFound
	}

	// The webhook body carries only the payment id; the status is re-fetched
	// from the provider through the transaction's own gateway config.
	if tx.GatewayConfigID != "" && tx.GatewayConfigID != cfg.ID {
		if adapter, err = u.adapterFor(ctx, tx.GatewayConfigID); err != nil {
			return tx, err
		}
	}

	status, err := adapter.GetPaymentStatus(ctx, tx.ExternalID)
	if err != nil {
		return tx, fmt.Errorf("webhook reconcile transaction_id=%s: %w", tx.ID, err)
	}

	log.Printf("[payment][reconcile] webhook transaction_id=%s event=%s status=%s", tx.ID, event.EventType, status)
	return u.applyStatus(ctx, tx, status, "webhook")
}

// ApplyProviderResult enriches a transaction with a full provider result:
// external linkage, payment URL, artifact metadata (merged, never replaced)
// and the mapped status.
func (u *ReconcileUseCase) ApplyProviderResult(ctx context.Context, tx entities.Transaction, result entities.PaymentResult, source string) (entities.Transaction, error) {
	if result.ExternalID != "" {
		tx.ExternalID = result.ExternalID
	}
	if result.PaymentURL != "" {
		tx.PaymentURL = result.PaymentURL
	}
	tx.MergeMetadata(result.ArtifactMetadata())

	changed := tx.ApplyStatus(result.Status)
	tx.UpdatedAt = time.Now().UTC()

	updated, err := u.transactions.Update(ctx, tx)
	if err != nil {
		return entities.Transaction{}, err
	}

	if changed {
		description := fmt.Sprintf("status changed to %s via %s", tx.Status, source)
		if result.ProviderStatus != "" {
			description = fmt.Sprintf("status changed to %s via %s (provider status %q)", tx.Status, source, result.ProviderStatus)
		}
		u.appendHistory(ctx, tx.ID, tx.Status, description)
	}
	return updated, nil
}

func (u *ReconcileUseCase) applyStatus(ctx context.Context, tx entities.Transaction, next entities.PaymentStatus, source string) (entities.Transaction, error) {
	if tx.Status == next {
		// Idempotent under repeated polling: no write, no history entry.
		return tx, nil
	}
	if !tx.ApplyStatus(next) {
		log.Printf("[payment][reconcile] stale update ignored transaction_id=%s status=%s incoming=%s", tx.ID, tx.Status, next)
		return tx, nil
	}
	tx.UpdatedAt = time.Now().UTC()

	updated, err := u.transactions.Update(ctx, tx)
	if err != nil {
		return entities.Transaction{}, err
	}
	u.appendHistory(ctx, tx.ID, tx.Status, fmt.Sprintf("status changed to %s via %s", tx.Status, source))

	log.Printf("[payment][reconcile] status applied transaction_id=%s status=%s source=%s", tx.ID, tx.Status, source)
	return updated, nil
}

// appendHistory is audit-only: a failed append is logged, never allowed to
// fail the reconciliation that produced it.
func (u *ReconcileUseCase) appendHistory(ctx context.Context, transactionID string, status entities.PaymentStatus, description string) {
	_, err := u.history.Append(ctx, entities.PaymentHistory{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Status:        status,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[payment][reconcile] history append failed transaction_id=%s status=%s err=%v", transactionID, status, err)
	}
}

func (u *ReconcileUseCase) adapterFor(ctx context.Context, gatewayConfigID string) (interfaces.IGatewayAdapter, error) {
	cfg, err := u.configs.GetByID(ctx, gatewayConfigID)
	if err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		return nil, fmt.Errorf("%w: %s", ErrGatewayConfigNotFound, gatewayConfigID)
	}
	return u.newGateway(cfg)
}
