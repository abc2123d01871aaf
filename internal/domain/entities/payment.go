package entities

import (
	"encoding/json"
	"time"
)

// Payment records money received against a work order (pagamento).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (os_id-index): ordem_servico_id
//
// Provider fields are only filled when the payment was processed through the
// card gateway; ProviderPayloadRaw keeps the original provider body (JSON)
// for traceability.
type Payment struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"ordem_servico_id"`
	PaidAt      time.Time `json:"data_pagamento"`
	Amount      float64   `json:"valor"`
	Method      string    `json:"forma_pagamento"`
	Installment int       `json:"parcela"`
	Note        string    `json:"observacao,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// FinanceSummary is the authoritative receipts/expenses aggregate served by
// GET /pagamentos/resumo.
type FinanceSummary struct {
	ReceiptsTotal float64 `json:"total_receitas"`
	ExpensesTotal float64 `json:"total_despesas"`
	Balance       float64 `json:"saldo"`
}
