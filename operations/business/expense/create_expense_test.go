package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/operations/mocks/repository/expense_repo"
	"encore.app/operations/model"
	"encore.app/operations/repository/expenses"
)

var fixedExpenseID = uuid.MustParse("0b4d6c9e-7f3a-4f1e-9a55-2f6f3c1d8e01")

func TestCreateExpense(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		expense       *model.Expense
		mockError     error
		expectedError string
		expectSuccess bool
	}{
		{
			name: "happy_case",
			expense: &model.Expense{
				OwnerID:        "user-1",
				AmountCents:    15000,
				Currency:       "USD",
				Description:    "travel",
				IdempotencyKey: "pay-req-42",
			},
			expectSuccess: true,
		},
		{
			name: "database_error",
			expense: &model.Expense{
				OwnerID:     "user-1",
				AmountCents: 100,
				Currency:    "EUR",
				Description: "coffee",
			},
			mockError:     errors.New("connection refused"),
			expectedError: "failed to create expense",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockExpenseRepo := expense_repo.NewMockQuerier(ctrl)
			business := &business{
				expenseRepo: mockExpenseRepo,
				newID:       func() uuid.UUID { return fixedExpenseID },
			}

			mockExpenseRepo.EXPECT().
				CreateExpense(gomock.Any(), expenses.CreateExpenseParams{
					ID:             pgtype.UUID{Bytes: fixedExpenseID, Valid: true},
					OwnerID:        tc.expense.OwnerID,
					AmountCents:    tc.expense.AmountCents,
					Currency:       tc.expense.Currency,
					Description:    tc.expense.Description,
					IdempotencyKey: tc.expense.IdempotencyKey,
				}).
				Return(expenses.Expense{
					ID:             pgtype.UUID{Bytes: fixedExpenseID, Valid: true},
					OwnerID:        tc.expense.OwnerID,
					AmountCents:    tc.expense.AmountCents,
					Currency:       tc.expense.Currency,
					Description:    tc.expense.Description,
					IdempotencyKey: tc.expense.IdempotencyKey,
					CreatedAt:      pgtype.Timestamptz{Time: createdAt, Valid: true},
				}, tc.mockError)

			result, err := business.CreateExpense(context.Background(), tc.expense)

			if tc.expectSuccess {
				assert.NoError(t, err)
				if assert.NotNil(t, result) {
					assert.Equal(t, fixedExpenseID, result.ID)
					assert.Equal(t, tc.expense.AmountCents, result.AmountCents)
					assert.Equal(t, tc.expense.IdempotencyKey, result.IdempotencyKey)
					assert.Equal(t, createdAt, result.CreatedAt)
				}
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.NotContains(t, err.Error(), "connection refused")
			}
		})
	}
}
