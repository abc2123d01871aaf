package entities

import "time"

// ExpenseCategory classifies ledger expenses (despesas).
type ExpenseCategory string

const (
	ExpenseCategoryFixed     ExpenseCategory = "FIXA"
	ExpenseCategoryVariable  ExpenseCategory = "VARIAVEL"
	ExpenseCategoryPersonnel ExpenseCategory = "PESSOAL"
)

// ExpenseStatus tracks whether an expense was settled.
type ExpenseStatus string

const (
	ExpenseStatusPaid    ExpenseStatus = "PAGO"
	ExpenseStatusPending ExpenseStatus = "PENDENTE"
)

// Expense is an outgoing ledger entry, independent of work orders.
//
// Storage model (DynamoDB):
//   - PK: id
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"descricao"`
	Amount      float64         `json:"valor"`
	DueDate     time.Time       `json:"data_vencimento"`
	PaidAt      *time.Time      `json:"data_pagamento,omitempty"`
	Category    ExpenseCategory `json:"categoria"`
	Status      ExpenseStatus   `json:"status"`
}
