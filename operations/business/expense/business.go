package expense

import (
	"context"

	"github.com/google/uuid"

	"encore.app/operations/model"
	"encore.app/operations/repository/expenses"
)

type Business interface {
	CreateExpense(ctx context.Context, expense *model.Expense) (*model.Expense, error)
}

type business struct {
	expenseRepo expenses.Querier
	newID       func() uuid.UUID
}

// NewExpenseBusiness creates the business layer for expenses
func NewExpenseBusiness(expenseRepo expenses.Querier) Business {
	return &business{
		expenseRepo: expenseRepo,
		newID:       uuid.New,
	}
}
