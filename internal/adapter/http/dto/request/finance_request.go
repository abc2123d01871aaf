package request

import (
	"encoding/json"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

// PaymentRequest registers money received against an order. mp_payload, when
// present, is forwarded verbatim to the card gateway.
type PaymentRequest struct {
	WorkOrderID    string          `json:"ordem_servico_id" binding:"required"`
	Amount         float64         `json:"valor" binding:"required"`
	Method         string          `json:"forma_pagamento" binding:"required"`
	Installment    int             `json:"parcela"`
	Note           string          `json:"observacao"`
	GatewayPayload json.RawMessage `json:"mp_payload"`
}

func (r PaymentRequest) ToInput() usecase.RegisterPaymentInput {
	return usecase.RegisterPaymentInput{
		WorkOrderID:    r.WorkOrderID,
		Amount:         r.Amount,
		Method:         r.Method,
		Installment:    r.Installment,
		Note:           r.Note,
		GatewayPayload: r.GatewayPayload,
	}
}

type ExpenseRequest struct {
	Description string    `json:"descricao" binding:"required"`
	Amount      float64   `json:"valor" binding:"required"`
	DueDate     time.Time `json:"data_vencimento" binding:"required"`
	Category    string    `json:"categoria" binding:"required"`
	Status      string    `json:"status"`
}

func (r ExpenseRequest) ToEntity(id string) entities.Expense {
	return entities.Expense{
		ID:          id,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Category:    entities.ExpenseCategory(r.Category),
		Status:      entities.ExpenseStatus(r.Status),
	}
}
