package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access_token credential")
	ErrMissingCustomer    = errors.New("customer name, email and document are required")
	ErrMissingCardToken   = errors.New("card payments require a tokenized card")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidExternalID  = errors.New("invalid provider payment id")
)

// mercadoPagoStatusMap is the private mapping table from Mercado Pago's status
// vocabulary onto the canonical enum. Unknown statuses map to PENDING and are
// flagged for manual review; the mapping never panics and never regresses a
// terminal transaction (the state machine enforces the latter).
var mercadoPagoStatusMap = map[string]entities.PaymentStatus{
	"approved":     entities.PaymentStatusPaid,
	"authorized":   entities.PaymentStatusProcessing,
	"pending":      entities.PaymentStatusPending,
	"in_process":   entities.PaymentStatusPending,
	"in_mediation": entities.PaymentStatusPending,
	"rejected":     entities.PaymentStatusCancelled,
	"cancelled":    entities.PaymentStatusCancelled,
	"refunded":     entities.PaymentStatusRefunded,
	"charged_back": entities.PaymentStatusRefunded,
	"expired":      entities.PaymentStatusExpired,
}

func mapMercadoPagoStatus(providerStatus string) entities.PaymentStatus {
	if mapped, ok := mercadoPagoStatusMap[strings.ToLower(strings.TrimSpace(providerStatus))]; ok {
		return mapped
	}
	log.Printf("[payment][gateway] unknown mercado pago status=%q mapped to PENDING for manual review", providerStatus)
	return entities.PaymentStatusPending
}

// MercadoPagoGateway implements IGatewayAdapter on top of the Mercado Pago
// SDK (cards, PIX and boleto).

type MercadoPagoGateway struct {
	payments               payment.Client
	refunds                refund.Client
	webhookSecret          string
	defaultNotificationURL string
}

var _ interfaces.IGatewayAdapter = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg entities.GatewayConfig) (*MercadoPagoGateway, error) {
	accessToken := strings.TrimSpace(cfg.Credential(entities.CredentialAccessToken))
	if accessToken == "" {
		log.Printf("[payment][gateway] missing access token gateway_config_id=%s", cfg.ID)
		return nil, ErrMissingAccessToken
	}

	sdkCfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config gateway_config_id=%s err=%v", cfg.ID, err)
		return nil, err
	}
	log.Printf("[payment][gateway] mercado pago client initialized gateway_config_id=%s", cfg.ID)

	return &MercadoPagoGateway{
		payments:               payment.NewClient(sdkCfg),
		refunds:                refund.NewClient(sdkCfg),
		webhookSecret:          cfg.Credential(entities.CredentialWebhookSecret),
		defaultNotificationURL: defaultNotificationURL(cfg),
	}, nil
}

func defaultNotificationURL(cfg entities.GatewayConfig) string {
	if u := strings.TrimSpace(cfg.Credential(entities.CredentialNotificationURL)); u != "" {
		return u
	}
	return getenvDefault("PAYMENT_NOTIFICATION_URL", "https://api.federapay.app/v1/payments/gateway/webhook")
}

// CreatePayment performs exactly one outbound call. There are no implicit
// retries here; a blind retry could create a duplicate charge.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, input entities.CreatePaymentInput) (entities.PaymentResult, error) {
	if !input.Amount.IsPositive() {
		return entities.PaymentResult{}, ErrInvalidAmount
	}
	if input.Customer.Name == "" || input.Customer.Email == "" || input.Customer.Document == "" {
		return entities.PaymentResult{}, ErrMissingCustomer
	}
	if input.Method.IsCard() && strings.TrimSpace(input.CardToken) == "" {
		// A live adapter never fabricates an approval for an untokenized card.
		return entities.PaymentResult{}, ErrMissingCardToken
	}

	req := g.buildRequest(input)
	log.Printf("[payment][gateway] create start reference=%s method=%s amount=%s", input.Reference, input.Method, input.Amount)

	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] create failed reference=%s err=%v", input.Reference, err)
		return entities.PaymentResult{}, fmt.Errorf("mercado pago create payment reference=%s: %w", input.Reference, err)
	}

	result := toPaymentResult(resp)
	log.Printf("[payment][gateway] create success reference=%s provider_payment_id=%s provider_status=%s", input.Reference, result.ExternalID, result.ProviderStatus)
	return result, nil
}

func (g *MercadoPagoGateway) buildRequest(input entities.CreatePaymentInput) payment.Request {
	notification := strings.TrimSpace(input.NotificationURL)
	if !isAbsoluteURL(notification) {
		// A missing webhook URL degrades to polling, never aborts the payment.
		notification = g.defaultNotificationURL
	}

	firstName, lastName := splitName(input.Customer.Name)

	metadata := make(map[string]any, len(input.Metadata))
	for k, v := range input.Metadata {
		metadata[k] = v
	}

	installments := input.Installments
	if installments < 1 {
		installments = 1
	}

	return payment.Request{
		TransactionAmount: input.Amount.InexactFloat64(),
		Description:       input.Description,
		PaymentMethodID:   paymentMethodID(input),
		Token:             input.CardToken,
		Installments:      installments,
		ExternalReference: input.Reference,
		NotificationURL:   notification,
		Metadata:          metadata,
		Payer: &payment.PayerRequest{
			Email:     input.Customer.Email,
			FirstName: firstName,
			LastName:  lastName,
			Identification: &payment.IdentificationRequest{
				Type:   documentType(input.Customer.Document),
				Number: input.Customer.Document,
			},
		},
	}
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, externalID string) (entities.PaymentStatus, error) {
	id, err := strconv.Atoi(strings.TrimSpace(externalID))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidExternalID, externalID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("mercado pago get payment provider_payment_id=%s: %w", externalID, err)
	}
	return mapMercadoPagoStatus(resp.Status), nil
}

func (g *MercadoPagoGateway) RefundPayment(ctx context.Context, externalID string) (entities.PaymentResult, error) {
	id, err := strconv.Atoi(strings.TrimSpace(externalID))
	if err != nil {
		return entities.PaymentResult{}, fmt.Errorf("%w: %q", ErrInvalidExternalID, externalID)
	}

	resp, err := g.refunds.Create(ctx, id)
	if err != nil {
		return entities.PaymentResult{}, fmt.Errorf("mercado pago refund provider_payment_id=%s: %w", externalID, err)
	}

	status := entities.PaymentStatusRefunded
	if !strings.EqualFold(resp.Status, "approved") {
		status = mapMercadoPagoStatus(resp.Status)
	}
	raw, _ := json.Marshal(resp)
	log.Printf("[payment][gateway] refund provider_payment_id=%s provider_status=%s", externalID, resp.Status)

	return entities.PaymentResult{
		ExternalID:     externalID,
		Status:         status,
		ProviderStatus: resp.Status,
		Raw:            raw,
	}, nil
}

func (g *MercadoPagoGateway) ValidateWebhook(headers map[string]string, body []byte) bool {
	return validateWebhookSignature(g.webhookSecret, headers, body)
}

func (g *MercadoPagoGateway) ParseWebhookData(body []byte) (entities.WebhookEvent, error) {
	return parseProviderWebhook(body)
}

// GetInstallmentOptions serves the fixed fallback ladder. The installment
// simulation endpoint is not exposed by the SDK version in use, and an
// unavailable installment lookup must never fail the payment flow.
func (g *MercadoPagoGateway) GetInstallmentOptions(_ context.Context, amount decimal.Decimal, method entities.PaymentMethod, _ string) []entities.InstallmentOption {
	return installmentLadder(amount, method)
}

func toPaymentResult(resp *payment.Response) entities.PaymentResult {
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
	}

	result := entities.PaymentResult{
		ExternalID:     strconv.Itoa(resp.ID),
		Status:         mapMercadoPagoStatus(resp.Status),
		ProviderStatus: resp.Status,
		QRCode:         resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:   resp.PointOfInteraction.TransactionData.QRCodeBase64,
		PaymentURL:     resp.PointOfInteraction.TransactionData.TicketURL,
		Barcode:        resp.TransactionDetails.Barcode.Content,
		BarcodeURL:     resp.TransactionDetails.ExternalResourceURL,
		Raw:            raw,
	}
	if result.PaymentURL == "" {
		// Boleto has no ticket URL; fall back to the hosted document.
		result.PaymentURL = result.BarcodeURL
	}
	return result
}

func paymentMethodID(input entities.CreatePaymentInput) string {
	switch input.Method {
	case entities.PaymentMethodPix:
		return "pix"
	case entities.PaymentMethodBoleto:
		return "bolbradesco"
	}
	// Card brands (visa, master, ...) come from the tokenization step.
	return input.Metadata["payment_method_id"]
}

func documentType(document string) string {
	if len(document) > 11 {
		return "CNPJ"
	}
	return "CPF"
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func isAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
