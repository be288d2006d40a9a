package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/model"
	"encore.app/operations/repository/payments"
)

// MarkPaymentPaid moves a pending payment to paid. The update is conditional on
// the pending status, so two concurrent calls cannot both succeed.
func (b *business) MarkPaymentPaid(ctx context.Context, paymentID int64, reference, paidBy string) (*model.Payment, error) {
	dbPayment, err := b.paymentRepo.MarkPaymentPaid(ctx, payments.MarkPaymentPaidParams{
		ID:        paymentID,
		Reference: pgtype.Text{String: reference, Valid: reference != ""},
		PaidBy:    pgtype.Text{String: paidBy, Valid: true},
	})
	if err == nil {
		return convertDBPaymentToModel(dbPayment), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		rlog.Error("failed to mark payment as paid", "payment_id", paymentID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to mark payment as paid"}
	}

	// The conditional update matched nothing: find out why.
	current, err := b.paymentRepo.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get payment"}
	}

	switch model.PaymentStatus(current.Status) {
	case model.PaymentStatusPaid:
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "payment is already paid"}
	case model.PaymentStatusCancelled:
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "payment is cancelled"}
	default:
		return nil, &errs.Error{Code: errs.Aborted, Message: "payment changed concurrently"}
	}
}

func convertDBPaymentToModel(dbPayment payments.Payment) *model.Payment {
	payment := &model.Payment{
		ID:          dbPayment.ID,
		AmountCents: dbPayment.AmountCents,
		Currency:    dbPayment.Currency,
		Status:      model.PaymentStatus(dbPayment.Status),
		CreatedAt:   dbPayment.CreatedAt.Time,
		UpdatedAt:   dbPayment.UpdatedAt.Time,
	}

	if dbPayment.Reference.Valid {
		payment.Reference = &dbPayment.Reference.String
	}

	if dbPayment.PaidBy.Valid {
		payment.PaidBy = &dbPayment.PaidBy.String
	}

	if dbPayment.PaidAt.Valid {
		payment.PaidAt = &dbPayment.PaidAt.Time
	}

	return payment
}
