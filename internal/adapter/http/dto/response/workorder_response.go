package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PartLineResponse struct {
	LineID    string  `json:"item_id"`
	PartID    string  `json:"peca_id,omitempty"`
	Name      string  `json:"nome_peca"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"valor_unitario"`
	Subtotal  float64 `json:"subtotal"`
}

type ServiceLineResponse struct {
	LineID      string  `json:"item_id"`
	ServiceID   string  `json:"servico_id"`
	Description string  `json:"descricao_servico"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"valor_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

type WorkOrderResponse struct {
	ID             string                `json:"id"`
	OpenedAt       time.Time             `json:"data_abertura"`
	ClosedAt       *time.Time            `json:"data_fechamento,omitempty"`
	Status         string                `json:"status"`
	Odometer       int                   `json:"km_atual"`
	ReportedDefect string                `json:"defeito_reclamado"`
	CustomerID     string                `json:"cliente_id"`
	VehicleID      string                `json:"veiculo_id"`
	MechanicID     string                `json:"mecanico_id"`
	PartLines      []PartLineResponse    `json:"pecas"`
	ServiceLines   []ServiceLineResponse `json:"servicos"`
}

// WorkOrderDetailResponse carries the server-computed aggregates; clients
// display them as-is instead of recomputing.
type WorkOrderDetailResponse struct {
	WorkOrderResponse
	Payments []PaymentResponse `json:"pagamentos"`

	PartsTotal    float64 `json:"total_pecas"`
	ServicesTotal float64 `json:"total_servicos"`
	GrandTotal    float64 `json:"total_geral"`
	PaidTotal     float64 `json:"total_pago"`
	Balance       float64 `json:"saldo_devedor"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:             o.ID,
		OpenedAt:       o.OpenedAt,
		ClosedAt:       o.ClosedAt,
		Status:         string(o.Status),
		Odometer:       o.Odometer,
		ReportedDefect: o.ReportedDefect,
		CustomerID:     o.CustomerID,
		VehicleID:      o.VehicleID,
		MechanicID:     o.MechanicID,
		PartLines:      []PartLineResponse{},
		ServiceLines:   []ServiceLineResponse{},
	}
	for _, l := range o.PartLines {
		resp.PartLines = append(resp.PartLines, PartLineResponse{
			LineID:    l.LineID,
			PartID:    l.PartID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	for _, l := range o.ServiceLines {
		resp.ServiceLines = append(resp.ServiceLines, ServiceLineResponse{
			LineID:      l.LineID,
			ServiceID:   l.ServiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal(),
		})
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

func FromWorkOrderDetail(d entities.WorkOrderDetail) WorkOrderDetailResponse {
	return WorkOrderDetailResponse{
		WorkOrderResponse: FromWorkOrder(d.WorkOrder),
		Payments:          FromPayments(d.Payments),
		PartsTotal:        d.PartsTotal,
		ServicesTotal:     d.ServicesTotal,
		GrandTotal:        d.GrandTotal,
		PaidTotal:         d.PaidTotal,
		Balance:           d.Balance,
	}
}
