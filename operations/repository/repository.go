package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/operations/repository/expenses"
	"encore.app/operations/repository/payments"
	"encore.app/operations/repository/protocols"
	"encore.app/operations/repository/records"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Records   records.Querier
	Expenses  expenses.Querier
	Payments  payments.Querier
	Protocols protocols.Querier
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Records:   records.New(db),
		Expenses:  expenses.New(db),
		Payments:  payments.New(db),
		Protocols: protocols.New(db),
	}
}
