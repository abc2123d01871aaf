package entities

import "time"

// OrderStatus represents the lifecycle of a work order (ordem de serviço).
//
// Domain notes:
//   - The UI presents the three statuses as kanban columns.
//   - Which transitions are legal is policy, not hardcoded here; see the
//     workflow package.
type OrderStatus string

const (
	OrderStatusOrcamento  OrderStatus = "ORCAMENTO"
	OrderStatusExecucao   OrderStatus = "EXECUCAO"
	OrderStatusFinalizado OrderStatus = "FINALIZADO"
)

// PartLineKind distinguishes the two line-item variants.
type PartLineKind string

const (
	PartLineCatalogBacked PartLineKind = "catalog"
	PartLineAdHoc         PartLineKind = "adhoc"
)

// PartLine is a part line item on a work order.
//
// Variants:
//   - catalog-backed: PartID set; name and unit price are snapshots resolved
//     from the catalog at add time, and stock was decremented.
//   - ad-hoc: PartID empty; free-text name and manually entered price, no
//     stock effect.
//
// Lines are immutable snapshots: a later catalog price change never touches
// an existing line.
type PartLine struct {
	LineID    string  `json:"item_id"`
	PartID    string  `json:"peca_id,omitempty"`
	Name      string  `json:"nome_peca"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"valor_unitario"`
}

func (l PartLine) Kind() PartLineKind {
	if l.PartID == "" {
		return PartLineAdHoc
	}
	return PartLineCatalogBacked
}

func (l PartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// ServiceLine is a labor line item. ServiceID is always set (no ad-hoc labor
// variant); UnitPrice may override the catalog labor price at add time.
type ServiceLine struct {
	LineID      string  `json:"item_id"`
	ServiceID   string  `json:"servico_id"`
	Description string  `json:"descricao_servico"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"valor_unitario"`
}

func (l ServiceLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// WorkOrder is the central work-tracking entity (OS).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (veiculo_id-index): veiculo_id
//   - GSI (cliente_id-index): cliente_id
//
// Line items are embedded in the order document; payments live in their own
// table keyed back by os_id.
type WorkOrder struct {
	ID             string        `json:"id"`
	OpenedAt       time.Time     `json:"data_abertura"`
	ClosedAt       *time.Time    `json:"data_fechamento,omitempty"`
	Status         OrderStatus   `json:"status"`
	Odometer       int           `json:"km_atual"`
	ReportedDefect string        `json:"defeito_reclamado"`
	CustomerID     string        `json:"cliente_id"`
	VehicleID      string        `json:"veiculo_id"`
	MechanicID     string        `json:"mecanico_id"`
	PartLines      []PartLine    `json:"pecas"`
	ServiceLines   []ServiceLine `json:"servicos"`
}

// PartsTotal sums part-line subtotals.
func (o WorkOrder) PartsTotal() float64 {
	total := 0.0
	for _, l := range o.PartLines {
		total += l.Subtotal()
	}
	return total
}

// ServicesTotal sums service-line subtotals.
func (o WorkOrder) ServicesTotal() float64 {
	total := 0.0
	for _, l := range o.ServiceLines {
		total += l.Subtotal()
	}
	return total
}

// WorkOrderDetail is the full order record served by GET /os/{id}/detalhes.
//
// The aggregate fields are computed server-side and consumed read-only by
// clients; the front end never recomputes them.
type WorkOrderDetail struct {
	WorkOrder
	Payments []Payment `json:"pagamentos"`

	PartsTotal    float64 `json:"total_pecas"`
	ServicesTotal float64 `json:"total_servicos"`
	GrandTotal    float64 `json:"total_geral"`
	PaidTotal     float64 `json:"total_pago"`
	Balance       float64 `json:"saldo_devedor"`
}
