package payment

import (
	"context"
	"encoding/json"

	"encore.app/operations/business/payload"
	"encore.app/operations/idempotency"
	"encore.app/operations/model"
)

const OperationMarkPaymentPaid = "mark_payment_paid"

type MarkPaymentPaidPayload struct {
	PaymentID int64  `json:"payment_id" validate:"required,gt=0"`
	Reference string `json:"reference" validate:"omitempty,max=128"`
}

type MarkPaymentPaidResult struct {
	Success bool          `json:"success"`
	Payment model.Payment `json:"payment"`
}

type markPaymentPaidHandler struct {
	business Business
}

// NewMarkPaymentPaidHandler exposes MarkPaymentPaid as the mark_payment_paid operation.
func NewMarkPaymentPaidHandler(business Business) idempotency.Handler {
	return &markPaymentPaidHandler{business: business}
}

func (h *markPaymentPaidHandler) OperationType() string {
	return OperationMarkPaymentPaid
}

func (h *markPaymentPaidHandler) Execute(ctx context.Context, raw json.RawMessage, ownerID string) (any, error) {
	var p MarkPaymentPaidPayload
	if err := payload.Decode(raw, &p); err != nil {
		return nil, err
	}

	paid, err := h.business.MarkPaymentPaid(ctx, p.PaymentID, p.Reference, ownerID)
	if err != nil {
		return nil, err
	}

	return MarkPaymentPaidResult{Success: true, Payment: *paid}, nil
}
