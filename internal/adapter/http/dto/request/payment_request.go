package request

import (
	"strings"

	"federapay/internal/domain/entities"
	"federapay/internal/usecase"

	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Document string `json:"document" binding:"required"`
}

// PaymentCreateRequest is the inbound payload for POST /payments.
//
// Amount is a decimal string ("150.00"); json numbers would round-trip
// through float64.
type PaymentCreateRequest struct {
	Amount         decimal.Decimal   `json:"amount" binding:"required"`
	Currency       string            `json:"currency"`
	Method         string            `json:"payment_method" binding:"required"`
	EntityType     string            `json:"entity_type" binding:"required"`
	EntityID       string            `json:"entity_id" binding:"required"`
	AthleteID      string            `json:"athlete_id"`
	Customer       CustomerRequest   `json:"customer" binding:"required"`
	Description    string            `json:"description"`
	CardToken      string            `json:"card_token"`
	Installments   int               `json:"installments"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata"`
}

func (r PaymentCreateRequest) ToCommand() usecase.CreatePaymentCommand {
	return usecase.CreatePaymentCommand{
		Amount:     r.Amount,
		Currency:   strings.ToUpper(strings.TrimSpace(r.Currency)),
		Method:     entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		EntityType: entities.EntityType(strings.ToLower(strings.TrimSpace(r.EntityType))),
		EntityID:   strings.TrimSpace(r.EntityID),
		AthleteID:  strings.TrimSpace(r.AthleteID),
		Customer: entities.Customer{
			Name:     strings.TrimSpace(r.Customer.Name),
			Email:    strings.TrimSpace(r.Customer.Email),
			Document: strings.TrimSpace(r.Customer.Document),
		},
		Description:    r.Description,
		CardToken:      r.CardToken,
		Installments:   r.Installments,
		IdempotencyKey: r.IdempotencyKey,
		Metadata:       r.Metadata,
	}
}
