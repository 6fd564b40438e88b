package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the canonical status vocabulary shared by every gateway
// adapter. Each adapter owns a private mapping table from its provider's
// vocabulary onto these values.
//
// State machine:
//
//	PENDING -> PROCESSING -> {PAID, CANCELLED, REFUNDED, EXPIRED}
//
// PENDING and PROCESSING are non-terminal; everything else is terminal.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusExpired    PaymentStatus = "EXPIRED"
)

func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusCancelled, PaymentStatusRefunded, PaymentStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo enforces monotonic transitions: a terminal status is never
// overwritten, and a same-status update is not a transition at all. Webhook
// delivery and polling may race on the same transaction; this rule makes the
// outcome order-independent without locking.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return false
	}
	return !s.IsTerminal()
}

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodBoleto:
		return true
	}
	return false
}

func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// EntityType identifies which part of the federation platform a transaction
// pays for. The type also decides the protocol prefix.

type EntityType string

const (
	EntityTypeEventRegistration EntityType = "event_registration"
	EntityTypeMembership        EntityType = "membership"
	EntityTypeClub              EntityType = "club"
)

func (e EntityType) Valid() bool {
	switch e {
	case EntityTypeEventRegistration, EntityTypeMembership, EntityTypeClub:
		return true
	}
	return false
}

func (e EntityType) ProtocolPrefix() string {
	switch e {
	case EntityTypeEventRegistration:
		return "EVT"
	case EntityTypeMembership:
		return "MEM"
	case EntityTypeClub:
		return "CLB"
	}
	return "TRX"
}

// DefaultCurrency is the single settlement currency supported by the core.
const DefaultCurrency = "BRL"

// Metadata keys populated from provider artifacts. Multiple partial updates
// (creation response, webhook, poll) each contribute fields, so metadata is
// always merged, never replaced.
const (
	MetadataKeyQRCode       = "qr_code"
	MetadataKeyQRCodeBase64 = "qr_code_base64"
	MetadataKeyBarcode      = "barcode"
	MetadataKeyBoletoURL    = "boleto_url"
	MetadataKeyInstallments = "installments"
)

// Transaction is one payment attempt. Attempts are never reused: a retry is a
// new Transaction with a new protocol.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (external_id-index): external_id
//   - GSI (idempotency_key-index): idempotency_key

type Transaction struct {
	ID              string          `json:"id"`
	Protocol        string          `json:"protocol"`
	GatewayConfigID string          `json:"gateway_config_id"`
	EntityType      EntityType      `json:"entity_type"`
	EntityID        string          `json:"entity_id"`
	AthleteID       string          `json:"athlete_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Description     string          `json:"description"`
	Status          PaymentStatus   `json:"status"`
	ExternalID      string          `json:"external_id,omitempty"`
	PaymentURL      string          `json:"payment_url,omitempty"`
	IdempotencyKey  string          `json:"idempotency_key,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ApplyStatus moves the transaction to next when the state machine allows it.
// Returns false (and leaves the transaction untouched) for same-status updates
// and for any attempt to overwrite a terminal status.
func (t *Transaction) ApplyStatus(next PaymentStatus) bool {
	if !t.Status.CanTransitionTo(next) {
		return false
	}
	t.Status = next
	return true
}

// MergeMetadata folds extra provider fields into the existing bag. Empty
// values are skipped so a later partial update cannot blank out an artifact
// learned earlier.
func (t *Transaction) MergeMetadata(extra map[string]string) {
	if len(extra) == 0 {
		return
	}
	if t.Metadata == nil {
		t.Metadata = make(map[string]string, len(extra))
	}
	for k, v := range extra {
		if v != "" {
			t.Metadata[k] = v
		}
	}
}
