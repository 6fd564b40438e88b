package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"federapay/internal/domain/entities"
)

// ErrPollingAbandoned is returned when a transaction stays open past the
// poller's total budget. The attempt is considered abandoned by the payer,
// not failed: a late webhook can still settle it.
var ErrPollingAbandoned = errors.New("status polling abandoned before a terminal status")

const (
	defaultPollInterval    = 5 * time.Second
	defaultPollMaxDuration = 10 * time.Minute
)

// StatusPoller is a caller-owned fallback for delayed or dropped webhooks.
// It is not a background daemon: the caller drives Poll for as long as it
// cares about the answer (typically while a PIX QR code is on screen) and
// cancels through the context when it stops caring.

type StatusPoller struct {
	reconciler IReconcileUseCase

	// Interval between ticks and total budget; zero values fall back to
	// 5s / 10m.
	Interval    time.Duration
	MaxDuration time.Duration
}

func NewStatusPoller(reconciler IReconcileUseCase) *StatusPoller {
	return &StatusPoller{reconciler: reconciler}
}

// Poll reconciles the transaction at a fixed interval until a terminal status
// is observed, the context is cancelled, or the budget runs out. It stops
// immediately when a terminal status is seen even if that status was learned
// through a webhook that raced the poll; repeated ticks on an unchanged
// status write nothing.
func (p *StatusPoller) Poll(ctx context.Context, transactionID string) (entities.Transaction, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	maxDuration := p.MaxDuration
	if maxDuration <= 0 {
		maxDuration = defaultPollMaxDuration
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	budget := time.NewTimer(maxDuration)
	defer budget.Stop()

	var last entities.Transaction
	for {
		tx, err := p.reconciler.ReconcileByID(ctx, transactionID)
		if err != nil {
			if errors.Is(err, ErrTransactionNotFound) || errors.Is(err, ErrGatewayConfigNotFound) || ctx.Err() != nil {
				return tx, err
			}
			// Transient provider errors: keep polling, the next tick retries.
			log.Printf("[payment][poller] tick failed transaction_id=%s err=%v", transactionID, err)
		} else {
			last = tx
			if tx.Status.IsTerminal() {
				log.Printf("[payment][poller] terminal status observed transaction_id=%s status=%s", transactionID, tx.Status)
				return tx, nil
			}
		}

		select {
		case <-ctx.Done():
			// Cancellation discards any in-flight result without applying it.
			return last, ctx.Err()
		case <-budget.C:
			log.Printf("[payment][poller] polling abandoned transaction_id=%s status=%s", transactionID, last.Status)
			return last, ErrPollingAbandoned
		case <-ticker.C:
		}
	}
}
