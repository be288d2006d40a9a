package model

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        string    `json:"owner_id"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	Description    string    `json:"description"`
	IdempotencyKey string    `json:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at"`
}
