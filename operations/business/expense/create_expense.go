package expense

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/model"
	"encore.app/operations/repository/expenses"
)

// CreateExpense inserts a new expense. Duplicate protection is the caller's
// idempotency key; the key is stored alongside the expense for tracing.
func (b *business) CreateExpense(ctx context.Context, expense *model.Expense) (*model.Expense, error) {
	id := b.newID()

	dbExpense, err := b.expenseRepo.CreateExpense(ctx, expenses.CreateExpenseParams{
		ID:             pgtype.UUID{Bytes: id, Valid: true},
		OwnerID:        expense.OwnerID,
		AmountCents:    expense.AmountCents,
		Currency:       expense.Currency,
		Description:    expense.Description,
		IdempotencyKey: expense.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create expense", "owner_id", expense.OwnerID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create expense"}
	}

	return convertDBExpenseToModel(dbExpense), nil
}

func convertDBExpenseToModel(dbExpense expenses.Expense) *model.Expense {
	return &model.Expense{
		ID:             dbExpense.ID.Bytes,
		OwnerID:        dbExpense.OwnerID,
		AmountCents:    dbExpense.AmountCents,
		Currency:       dbExpense.Currency,
		Description:    dbExpense.Description,
		IdempotencyKey: dbExpense.IdempotencyKey,
		CreatedAt:      dbExpense.CreatedAt.Time,
	}
}
