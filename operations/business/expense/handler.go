package expense

import (
	"context"
	"encoding/json"
	"strings"

	"encore.dev/beta/errs"

	"encore.app/operations/business/payload"
	"encore.app/operations/idempotency"
	"encore.app/operations/model"
)

const OperationCreateExpense = "create_expense"

const defaultCurrency = "USD"

type CreateExpensePayload struct {
	Amount      json.Number `json:"amount" validate:"required"`
	Description string      `json:"description" validate:"required,max=255"`
	Currency    string      `json:"currency" validate:"omitempty,len=3,alpha"`
}

type CreateExpenseResult struct {
	Success bool          `json:"success"`
	Expense model.Expense `json:"expense"`
}

type createExpenseHandler struct {
	business Business
}

// NewCreateExpenseHandler exposes CreateExpense as the create_expense operation.
func NewCreateExpenseHandler(business Business) idempotency.Handler {
	return &createExpenseHandler{business: business}
}

func (h *createExpenseHandler) OperationType() string {
	return OperationCreateExpense
}

func (h *createExpenseHandler) Execute(ctx context.Context, raw json.RawMessage, ownerID string) (any, error) {
	var p CreateExpensePayload
	if err := payload.Decode(raw, &p); err != nil {
		return nil, err
	}

	amountCents, err := payload.ParseAmountCents(p.Amount)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(p.Description)
	if description == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "description must not be blank"}
	}

	currency := strings.ToUpper(p.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	created, err := h.business.CreateExpense(ctx, &model.Expense{
		OwnerID:        ownerID,
		AmountCents:    amountCents,
		Currency:       currency,
		Description:    description,
		IdempotencyKey: idempotency.KeyFromContext(ctx),
	})
	if err != nil {
		return nil, err
	}

	return CreateExpenseResult{Success: true, Expense: *created}, nil
}
