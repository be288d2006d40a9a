package payment

import (
	"context"

	"encore.app/operations/model"
	"encore.app/operations/repository/payments"
)

type Business interface {
	MarkPaymentPaid(ctx context.Context, paymentID int64, reference, paidBy string) (*model.Payment, error)
}

type business struct {
	paymentRepo payments.Querier
}

// NewPaymentBusiness creates the business layer for payments
func NewPaymentBusiness(paymentRepo payments.Querier) Business {
	return &business{paymentRepo: paymentRepo}
}
