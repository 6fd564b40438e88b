package response

import (
	"time"

	"federapay/internal/domain/entities"
)

type PaymentResponse struct {
	ID            string            `json:"id"`
	Protocol      string            `json:"protocol"`
	EntityType    string            `json:"entity_type"`
	EntityID      string            `json:"entity_id"`
	AthleteID     string            `json:"athlete_id,omitempty"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	Description   string            `json:"description,omitempty"`
	Status        string            `json:"status"`
	ExternalID    string            `json:"external_id,omitempty"`
	PaymentURL    string            `json:"payment_url,omitempty"`
	QRCode        string            `json:"qr_code,omitempty"`
	QRCodeBase64  string            `json:"qr_code_base64,omitempty"`
	Barcode       string            `json:"barcode,omitempty"`
	BoletoURL     string            `json:"boleto_url,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// FromTransaction surfaces payment artifacts (QR code, barcode) as first
// class fields so checkout screens never parse the metadata map.
func FromTransaction(tx entities.Transaction) PaymentResponse {
	return PaymentResponse{
		ID:            tx.ID,
		Protocol:      tx.Protocol,
		EntityType:    string(tx.EntityType),
		EntityID:      tx.EntityID,
		AthleteID:     tx.AthleteID,
		Amount:        tx.Amount.StringFixed(2),
		Currency:      tx.Currency,
		PaymentMethod: string(tx.PaymentMethod),
		Description:   tx.Description,
		Status:        string(tx.Status),
		ExternalID:    tx.ExternalID,
		PaymentURL:    tx.PaymentURL,
		QRCode:        tx.Metadata[entities.MetadataKeyQRCode],
		QRCodeBase64:  tx.Metadata[entities.MetadataKeyQRCodeBase64],
		Barcode:       tx.Metadata[entities.MetadataKeyBarcode],
		BoletoURL:     tx.Metadata[entities.MetadataKeyBoletoURL],
		Metadata:      tx.Metadata,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

type PaymentHistoryResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPaymentHistory(items []entities.PaymentHistory) []PaymentHistoryResponse {
	out := make([]PaymentHistoryResponse, 0, len(items))
	for _, h := range items {
		out = append(out, PaymentHistoryResponse{
			ID:          h.ID,
			Status:      string(h.Status),
			Description: h.Description,
			CreatedAt:   h.CreatedAt,
		})
	}
	return out
}

type InstallmentOptionResponse struct {
	Installments      int    `json:"installments"`
	InstallmentAmount string `json:"installment_amount"`
	Total             string `json:"total"`
	Message           string `json:"message"`
}

func FromInstallmentOptions(opts []entities.InstallmentOption) []InstallmentOptionResponse {
	out := make([]InstallmentOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, InstallmentOptionResponse{
			Installments:      o.Installments,
			InstallmentAmount: o.InstallmentAmount.StringFixed(2),
			Total:             o.Total.StringFixed(2),
			Message:           o.Message,
		})
	}
	return out
}
