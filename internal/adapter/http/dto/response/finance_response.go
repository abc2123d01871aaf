package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"ordem_servico_id"`
	PaidAt      time.Time `json:"data_pagamento"`
	Amount      float64   `json:"valor"`
	Method      string    `json:"forma_pagamento"`
	Installment int       `json:"parcela"`
	Note        string    `json:"observacao,omitempty"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		WorkOrderID:       p.WorkOrderID,
		PaidAt:            p.PaidAt,
		Amount:            p.Amount,
		Method:            p.Method,
		Installment:       p.Installment,
		Note:              p.Note,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type ExpenseResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"descricao"`
	Amount      float64    `json:"valor"`
	DueDate     time.Time  `json:"data_vencimento"`
	PaidAt      *time.Time `json:"data_pagamento,omitempty"`
	Category    string     `json:"categoria"`
	Status      string     `json:"status"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		DueDate:     e.DueDate,
		PaidAt:      e.PaidAt,
		Category:    string(e.Category),
		Status:      string(e.Status),
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

type FinanceSummaryResponse struct {
	ReceiptsTotal float64 `json:"total_receitas"`
	ExpensesTotal float64 `json:"total_despesas"`
	Balance       float64 `json:"saldo"`
}

func FromFinanceSummary(s entities.FinanceSummary) FinanceSummaryResponse {
	return FinanceSummaryResponse{
		ReceiptsTotal: s.ReceiptsTotal,
		ExpensesTotal: s.ExpensesTotal,
		Balance:       s.Balance,
	}
}
