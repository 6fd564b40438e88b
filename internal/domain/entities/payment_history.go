package entities

import "time"

// PaymentHistory is an append-only audit entry: one row per observed status
// value for a transaction. Rows are never mutated or deleted and are not used
// for control flow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (transaction_id-index): transaction_id

type PaymentHistory struct {
	ID            string        `json:"id"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	Description   string        `json:"description"`
	CreatedAt     time.Time     `json:"created_at"`
}
