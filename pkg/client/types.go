package client

import "time"

// Wire types mirror the API's JSON contract. The SDK deliberately does not
// share structs with the server packages so it stays usable on its own.

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"cpf_cnpj"`
	Address string `json:"endereco"`
}

type Vehicle struct {
	ID         string `json:"id"`
	Plate      string `json:"placa"`
	Model      string `json:"modelo"`
	Make       string `json:"marca"`
	Year       int    `json:"ano"`
	Color      string `json:"cor"`
	CustomerID string `json:"cliente_id"`
}

type Mechanic struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade,omitempty"`
}

type Part struct {
	ID        string  `json:"id"`
	Code      string  `json:"codigo"`
	Name      string  `json:"nome"`
	SalePrice float64 `json:"valor_venda"`
	StockQty  int     `json:"estoque_atual"`
}

type Service struct {
	ID               string  `json:"id"`
	Description      string  `json:"descricao"`
	LaborPrice       float64 `json:"valor_mao_obra"`
	EstimatedMinutes int     `json:"tempo_estimado_minutos,omitempty"`
}

type PartLine struct {
	LineID    string  `json:"item_id"`
	PartID    string  `json:"peca_id,omitempty"`
	Name      string  `json:"nome_peca"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"valor_unitario"`
	Subtotal  float64 `json:"subtotal"`
}

type ServiceLine struct {
	LineID      string  `json:"item_id"`
	ServiceID   string  `json:"servico_id"`
	Description string  `json:"descricao_servico"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"valor_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// Work order statuses as the API spells them.
const (
	StatusOrcamento  = "ORCAMENTO"
	StatusExecucao   = "EXECUCAO"
	StatusFinalizado = "FINALIZADO"
)

type WorkOrder struct {
	ID             string        `json:"id"`
	OpenedAt       time.Time     `json:"data_abertura"`
	ClosedAt       *time.Time    `json:"data_fechamento,omitempty"`
	Status         string        `json:"status"`
	Odometer       int           `json:"km_atual"`
	ReportedDefect string        `json:"defeito_reclamado"`
	CustomerID     string        `json:"cliente_id"`
	VehicleID      string        `json:"veiculo_id"`
	MechanicID     string        `json:"mecanico_id"`
	PartLines      []PartLine    `json:"pecas"`
	ServiceLines   []ServiceLine `json:"servicos"`
}

// WorkOrderDetail carries the server-computed aggregates. They are consumed
// read-only; the client never recomputes them.
type WorkOrderDetail struct {
	WorkOrder
	Payments []Payment `json:"pagamentos"`

	PartsTotal    float64 `json:"total_pecas"`
	ServicesTotal float64 `json:"total_servicos"`
	GrandTotal    float64 `json:"total_geral"`
	PaidTotal     float64 `json:"total_pago"`
	Balance       float64 `json:"saldo_devedor"`
}

type Payment struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"ordem_servico_id"`
	PaidAt      time.Time `json:"data_pagamento"`
	Amount      float64   `json:"valor"`
	Method      string    `json:"forma_pagamento"`
	Installment int       `json:"parcela"`
	Note        string    `json:"observacao,omitempty"`
}

type Expense struct {
	ID          string     `json:"id"`
	Description string     `json:"descricao"`
	Amount      float64    `json:"valor"`
	DueDate     time.Time  `json:"data_vencimento"`
	PaidAt      *time.Time `json:"data_pagamento,omitempty"`
	Category    string     `json:"categoria"`
	Status      string     `json:"status"`
}

type FinanceSummary struct {
	ReceiptsTotal float64 `json:"total_receitas"`
	ExpensesTotal float64 `json:"total_despesas"`
	Balance       float64 `json:"saldo"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"is_active"`
}

// Input payloads.

type CustomerInput struct {
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"cpf_cnpj"`
	Address string `json:"endereco"`
}

type VehicleInput struct {
	Plate      string `json:"placa"`
	Model      string `json:"modelo"`
	Make       string `json:"marca"`
	Year       int    `json:"ano"`
	Color      string `json:"cor"`
	CustomerID string `json:"cliente_id"`
}

type MechanicInput struct {
	Name      string `json:"nome"`
	Specialty string `json:"especialidade,omitempty"`
}

type PartInput struct {
	Code      string  `json:"codigo"`
	Name      string  `json:"nome"`
	SalePrice float64 `json:"valor_venda"`
	StockQty  int     `json:"estoque_atual"`
}

type ServiceInput struct {
	Description      string  `json:"descricao"`
	LaborPrice       float64 `json:"valor_mao_obra"`
	EstimatedMinutes int     `json:"tempo_estimado_minutos,omitempty"`
}

type OpenWorkOrderInput struct {
	VehicleID      string `json:"veiculo_id"`
	MechanicID     string `json:"mecanico_id"`
	Odometer       int    `json:"km_atual"`
	ReportedDefect string `json:"defeito_reclamado"`
}

// AddPartLineInput: set PartID for a catalog-backed line, or AdHocName plus
// UnitPrice for an ad-hoc one. Never both.
type AddPartLineInput struct {
	PartID    string   `json:"peca_id,omitempty"`
	AdHocName string   `json:"nome_peca,omitempty"`
	Quantity  int      `json:"quantidade"`
	UnitPrice *float64 `json:"valor_unitario,omitempty"`
}

type AddServiceLineInput struct {
	ServiceID string   `json:"servico_id"`
	Quantity  int      `json:"quantidade,omitempty"`
	UnitPrice *float64 `json:"valor_unitario,omitempty"`
}

type PaymentInput struct {
	WorkOrderID string  `json:"ordem_servico_id"`
	Amount      float64 `json:"valor"`
	Method      string  `json:"forma_pagamento"`
	Installment int     `json:"parcela,omitempty"`
	Note        string  `json:"observacao,omitempty"`
}

type ExpenseInput struct {
	Description string    `json:"descricao"`
	Amount      float64   `json:"valor"`
	DueDate     time.Time `json:"data_vencimento"`
	Category    string    `json:"categoria"`
	Status      string    `json:"status,omitempty"`
}
