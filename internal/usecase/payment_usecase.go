package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentAmount     = errors.New("payment amount must be greater than zero")
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrInvalidEntityType        = errors.New("invalid entity type")
	ErrMissingEntityID          = errors.New("entity_id is required")
	ErrMissingCustomerIdentity  = errors.New("customer name, email and document are required")
	ErrUnsupportedCurrency      = errors.New("unsupported settlement currency")
	ErrTransactionNotRefundable = errors.New("transaction is not refundable")
	ErrProviderCallFailed       = errors.New("payment provider call failed")
)

// CreatePaymentCommand is the caller-facing input for one payment attempt.
//
// IdempotencyKey guards against duplicate charges on caller retries: a replay
// returns the original transaction without touching the provider again.

type CreatePaymentCommand struct {
	Amount          decimal.Decimal
	Currency        string
	Method          entities.PaymentMethod
	EntityType      entities.EntityType
	EntityID        string
	AthleteID       string
	Customer        entities.Customer
	Description     string
	CardToken       string
	Installments    int
	IdempotencyKey  string
	NotificationURL string
	Metadata        map[string]string
}

// IPaymentUseCase is the inbound surface consumed by registration flows and
// dashboard forms.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (entities.Transaction, error)
	GetPayment(ctx context.Context, id string) (entities.Transaction, error)
	RefundPayment(ctx context.Context, id string) (entities.Transaction, error)
	ListHistory(ctx context.Context, transactionID string) ([]entities.PaymentHistory, error)
	GetInstallmentOptions(ctx context.Context, amount decimal.Decimal, method entities.PaymentMethod, entityType entities.EntityType) ([]entities.InstallmentOption, error)
}

type PaymentUseCase struct {
	transactions interfaces.ITransactionRepository
	history      interfaces.IPaymentHistoryRepository
	selector     *GatewaySelector
	reconciler   IReconcileUseCase
	newGateway   GatewayFactory
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	transactions interfaces.ITransactionRepository,
	history interfaces.IPaymentHistoryRepository,
	selector *GatewaySelector,
	reconciler IReconcileUseCase,
	newGateway GatewayFactory,
) *PaymentUseCase {
	return &PaymentUseCase{
		transactions: transactions,
		history:      history,
		selector:     selector,
		reconciler:   reconciler,
		newGateway:   newGateway,
	}
}

// CreatePayment runs the full creation flow: validate, select a gateway,
// persist a PENDING record, call the provider once, enrich the record with
// the provider result. A provider-side failure still leaves the auditable
// PENDING row behind.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (entities.Transaction, error) {
	if err := validateCreateCommand(cmd); err != nil {
		log.Printf("[payment][usecase] create rejected entity_type=%s entity_id=%s err=%v", cmd.EntityType, cmd.EntityID, err)
		return entities.Transaction{}, err
	}

	if key := strings.TrimSpace(cmd.IdempotencyKey); key != "" {
		existing, err := u.transactions.GetByIdempotencyKey(ctx, key)
		if err != nil {
			return entities.Transaction{}, err
		}
		if existing.ID != "" {
			log.Printf("[payment][usecase] idempotent replay transaction_id=%s idempotency_key=%s", existing.ID, key)
			return existing, nil
		}
	}

	// Configuration problems must surface before any transaction row exists.
	cfg, err := u.selector.Select(ctx, cmd.EntityType, cmd.Method)
	if err != nil {
		return entities.Transaction{}, err
	}
	adapter, err := u.newGateway(cfg)
	if err != nil {
		return entities.Transaction{}, err
	}

	now := time.Now().UTC()
	tx := entities.Transaction{
		ID:              uuid.NewString(),
		Protocol:        entities.NewProtocol(cmd.EntityType, now),
		GatewayConfigID: cfg.ID,
		EntityType:      cmd.EntityType,
		EntityID:        cmd.EntityID,
		AthleteID:       cmd.AthleteID,
		Amount:          cmd.Amount,
		Currency:        entities.DefaultCurrency,
		PaymentMethod:   cmd.Method,
		Description:     cmd.Description,
		Status:          entities.PaymentStatusPending,
		IdempotencyKey:  strings.TrimSpace(cmd.IdempotencyKey),
		Metadata:        cmd.Metadata,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.transactions.Create(ctx, tx)
	if err != nil {
		log.Printf("[payment][usecase] transaction create failed protocol=%s err=%v", tx.Protocol, err)
		return entities.Transaction{}, err
	}
	u.appendHistory(ctx, created.ID, created.Status, fmt.Sprintf("payment created with protocol %s", created.Protocol))
	log.Printf("[payment][usecase] transaction persisted transaction_id=%s protocol=%s gateway_config_id=%s", created.ID, created.Protocol, cfg.ID)

	result, err := adapter.CreatePayment(ctx, entities.CreatePaymentInput{
		Amount:          cmd.Amount,
		Currency:        created.Currency,
		Method:          cmd.Method,
		Customer:        cmd.Customer,
		Description:     cmd.Description,
		Reference:       created.ID,
		NotificationURL: cmd.NotificationURL,
		CardToken:       cmd.CardToken,
		Installments:    cmd.Installments,
		Metadata:        cmd.Metadata,
	})
	if err != nil {
		log.Printf("[payment][usecase] provider call failed transaction_id=%s err=%v", created.ID, err)
		return entities.Transaction{}, fmt.Errorf("%w: transaction_id=%s: %v", ErrProviderCallFailed, created.ID, err)
	}

	updated, err := u.reconciler.ApplyProviderResult(ctx, created, result, "create")
	if err != nil {
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] create success transaction_id=%s protocol=%s status=%s provider_payment_id=%s", updated.ID, updated.Protocol, updated.Status, updated.ExternalID)
	return updated, nil
}

// GetPayment returns the current snapshot, reconciling against the provider
// first when an external id is linked and the status is still open.
func (u *PaymentUseCase) GetPayment(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	tx, err := u.transactions.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if tx.ExternalID == "" || tx.Status.IsTerminal() {
		return tx, nil
	}

	reconciled, err := u.reconciler.ReconcileByID(ctx, tx.ID)
	if err != nil {
		// Serve the stored snapshot when the provider is unreachable.
		log.Printf("[payment][usecase] on-demand reconcile failed transaction_id=%s err=%v", tx.ID, err)
		return tx, nil
	}
	return reconciled, nil
}

func (u *PaymentUseCase) RefundPayment(ctx context.Context, id string) (entities.Transaction, error) {
	tx, err := u.transactions.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if tx.ExternalID == "" || tx.Status != entities.PaymentStatusPaid {
		return entities.Transaction{}, ErrTransactionNotRefundable
	}

	cfg, err := u.configFor(ctx, tx.GatewayConfigID)
	if err != nil {
		return entities.Transaction{}, err
	}
	adapter, err := u.newGateway(cfg)
	if err != nil {
		return entities.Transaction{}, err
	}

	result, err := adapter.RefundPayment(ctx, tx.ExternalID)
	if err != nil {
		return entities.Transaction{}, fmt.Errorf("%w: transaction_id=%s: %v", ErrProviderCallFailed, tx.ID, err)
	}
	return u.reconciler.ApplyProviderResult(ctx, tx, result, "refund")
}

func (u *PaymentUseCase) ListHistory(ctx context.Context, transactionID string) ([]entities.PaymentHistory, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrTransactionNotFound
	}
	return u.history.ListByTransactionID(ctx, transactionID)
}

func (u *PaymentUseCase) GetInstallmentOptions(ctx context.Context, amount decimal.Decimal, method entities.PaymentMethod, entityType entities.EntityType) ([]entities.InstallmentOption, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	cfg, err := u.selector.Select(ctx, entityType, method)
	if err != nil {
		return nil, err
	}
	adapter, err := u.newGateway(cfg)
	if err != nil {
		return nil, err
	}
	return adapter.GetInstallmentOptions(ctx, amount, method, ""), nil
}

func (u *PaymentUseCase) configFor(ctx context.Context, gatewayConfigID string) (entities.GatewayConfig, error) {
	cfg, err := u.selector.configs.GetByID(ctx, gatewayConfigID)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if cfg.ID == "" {
		return entities.GatewayConfig{}, fmt.Errorf("%w: %s", ErrGatewayConfigNotFound, gatewayConfigID)
	}
	return cfg, nil
}

func (u *PaymentUseCase) appendHistory(ctx context.Context, transactionID string, status entities.PaymentStatus, description string) {
	_, err := u.history.Append(ctx, entities.PaymentHistory{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Status:        status,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[payment][usecase] history append failed transaction_id=%s err=%v", transactionID, err)
	}
}

func validateCreateCommand(cmd CreatePaymentCommand) error {
	if !cmd.Amount.IsPositive() {
		return ErrInvalidPaymentAmount
	}
	if cmd.Currency != "" && cmd.Currency != entities.DefaultCurrency {
		return ErrUnsupportedCurrency
	}
	if !cmd.Method.Valid() {
		return ErrInvalidPaymentMethod
	}
	if !cmd.EntityType.Valid() {
		return ErrInvalidEntityType
	}
	if strings.TrimSpace(cmd.EntityID) == "" {
		return ErrMissingEntityID
	}
	c := cmd.Customer
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Document) == "" {
		return ErrMissingCustomerIdentity
	}
	return nil
}
