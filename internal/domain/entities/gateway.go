package entities

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Customer is the payer identity required by every provider.

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

// CreatePaymentInput is the provider-agnostic payload handed to a gateway
// adapter. NotificationURL may be empty; adapters substitute their own default
// callback so a missing webhook degrades to polling instead of aborting.

type CreatePaymentInput struct {
	Amount          decimal.Decimal
	Currency        string
	Method          PaymentMethod
	Customer        Customer
	Description     string
	Reference       string
	NotificationURL string
	CardToken       string
	Installments    int
	Metadata        map[string]string
}

// PaymentResult is what an adapter extracted from a provider response. Raw
// keeps the original provider body (JSON) for traceability, mirroring how the
// persisted transaction keeps a metadata bag.

type PaymentResult struct {
	ExternalID     string
	Status         PaymentStatus
	ProviderStatus string
	PaymentURL     string
	QRCode         string
	QRCodeBase64   string
	Barcode        string
	BarcodeURL     string
	Raw            json.RawMessage
}

// ArtifactMetadata exposes the method-specific artifacts as metadata entries
// ready to merge into a Transaction.
func (r PaymentResult) ArtifactMetadata() map[string]string {
	return map[string]string{
		MetadataKeyQRCode:       r.QRCode,
		MetadataKeyQRCodeBase64: r.QRCodeBase64,
		MetadataKeyBarcode:      r.Barcode,
		MetadataKeyBoletoURL:    r.BarcodeURL,
	}
}

// WebhookEvent is the minimal content parsed out of a provider notification.

type WebhookEvent struct {
	ExternalID string
	EventType  string
}

// InstallmentOption is one row of a card-installment ladder. Message is always
// derived from the numeric fields so the two can never drift apart.

type InstallmentOption struct {
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	Total             decimal.Decimal `json:"total"`
	Message           string          `json:"message"`
}

func NewInstallmentOption(installments int, total decimal.Decimal) InstallmentOption {
	per := total.DivRound(decimal.NewFromInt(int64(installments)), 2)
	return InstallmentOption{
		Installments:      installments,
		InstallmentAmount: per,
		Total:             total,
		Message:           fmt.Sprintf("%dx de R$ %s", installments, per.StringFixed(2)),
	}
}
