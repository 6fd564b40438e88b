package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SandboxTestFailureSuffix marks the reserved test card range: any card token
// or number ending in it is rejected by the simulator.
const SandboxTestFailureSuffix = "0002"

// SandboxGateway simulates a provider for gateway configs flagged sandbox.
// It is the only place where approvals are fabricated; the registry never
// selects it for a live config.
//
// The simulator keeps an in-memory ledger of the payments it created so
// GetPaymentStatus answers consistently across poll ticks. That ledger is
// simulation state only; the transaction store remains the source of truth.

type SandboxGateway struct {
	webhookSecret string

	mu       sync.Mutex
	statuses map[string]string
	seq      int64
}

var _ interfaces.IGatewayAdapter = (*SandboxGateway)(nil)

func NewSandboxGateway(cfg entities.GatewayConfig) *SandboxGateway {
	log.Printf("[payment][gateway] sandbox simulator enabled gateway_config_id=%s provider=%s", cfg.ID, cfg.Provider)
	return &SandboxGateway{
		webhookSecret: cfg.Credential(entities.CredentialWebhookSecret),
		statuses:      make(map[string]string),
	}
}

func (g *SandboxGateway) CreatePayment(_ context.Context, input entities.CreatePaymentInput) (entities.PaymentResult, error) {
	if !input.Amount.IsPositive() {
		return entities.PaymentResult{}, ErrInvalidAmount
	}
	if input.Customer.Name == "" || input.Customer.Email == "" || input.Customer.Document == "" {
		return entities.PaymentResult{}, ErrMissingCustomer
	}
	if input.Method.IsCard() && strings.TrimSpace(input.CardToken) == "" {
		return entities.PaymentResult{}, ErrMissingCardToken
	}

	g.mu.Lock()
	g.seq++
	externalID := fmt.Sprintf("sbx-%d-%d", time.Now().UTC().Unix(), g.seq)
	g.mu.Unlock()

	providerStatus := "pending"
	result := entities.PaymentResult{ExternalID: externalID}

	switch {
	case input.Method.IsCard() && strings.HasSuffix(input.CardToken, SandboxTestFailureSuffix):
		providerStatus = "rejected"
	case input.Method.IsCard():
		providerStatus = "approved"
	case input.Method == entities.PaymentMethodPix:
		result.QRCode = fmt.Sprintf("00020126sandbox%s5204000053039865802BR6304", externalID)
		result.QRCodeBase64 = base64.StdEncoding.EncodeToString([]byte(result.QRCode))
		result.PaymentURL = fmt.Sprintf("https://sandbox.federapay.app/pix/%s", externalID)
	case input.Method == entities.PaymentMethodBoleto:
		result.Barcode = fmt.Sprintf("23790%019d", g.seqSnapshot())
		result.BarcodeURL = fmt.Sprintf("https://sandbox.federapay.app/boleto/%s.pdf", externalID)
		result.PaymentURL = result.BarcodeURL
	}

	result.Status = mapMercadoPagoStatus(providerStatus)
	result.ProviderStatus = providerStatus
	result.Raw, _ = json.Marshal(map[string]any{
		"id":                 externalID,
		"status":             providerStatus,
		"external_reference": input.Reference,
		"transaction_amount": input.Amount.String(),
		"sandbox":            true,
	})

	g.mu.Lock()
	g.statuses[externalID] = providerStatus
	g.mu.Unlock()

	log.Printf("[payment][gateway] sandbox create reference=%s provider_payment_id=%s provider_status=%s", input.Reference, externalID, providerStatus)
	return result, nil
}

func (g *SandboxGateway) GetPaymentStatus(_ context.Context, externalID string) (entities.PaymentStatus, error) {
	g.mu.Lock()
	providerStatus, ok := g.statuses[externalID]
	g.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidExternalID, externalID)
	}
	return mapMercadoPagoStatus(providerStatus), nil
}

func (g *SandboxGateway) RefundPayment(_ context.Context, externalID string) (entities.PaymentResult, error) {
	g.mu.Lock()
	_, ok := g.statuses[externalID]
	if ok {
		g.statuses[externalID] = "refunded"
	}
	g.mu.Unlock()
	if !ok {
		return entities.PaymentResult{}, fmt.Errorf("%w: %q", ErrInvalidExternalID, externalID)
	}

	raw, _ := json.Marshal(map[string]any{"id": externalID, "status": "refunded", "sandbox": true})
	return entities.PaymentResult{
		ExternalID:     externalID,
		Status:         entities.PaymentStatusRefunded,
		ProviderStatus: "refunded",
		Raw:            raw,
	}, nil
}

func (g *SandboxGateway) ValidateWebhook(headers map[string]string, body []byte) bool {
	return validateWebhookSignature(g.webhookSecret, headers, body)
}

func (g *SandboxGateway) ParseWebhookData(body []byte) (entities.WebhookEvent, error) {
	return parseProviderWebhook(body)
}

func (g *SandboxGateway) GetInstallmentOptions(_ context.Context, amount decimal.Decimal, method entities.PaymentMethod, _ string) []entities.InstallmentOption {
	return installmentLadder(amount, method)
}

// MarkPaid flips a simulated payment to approved so tests and local flows can
// drive webhook/poll reconciliation.
func (g *SandboxGateway) MarkPaid(externalID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.statuses[externalID]; ok {
		g.statuses[externalID] = "approved"
	}
}

func (g *SandboxGateway) seqSnapshot() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}
