package request

import "oficina_xpto/internal/usecase"

type OpenWorkOrderRequest struct {
	VehicleID      string `json:"veiculo_id" binding:"required"`
	MechanicID     string `json:"mecanico_id" binding:"required"`
	Odometer       int    `json:"km_atual"`
	ReportedDefect string `json:"defeito_reclamado" binding:"required"`
}

func (r OpenWorkOrderRequest) ToInput() usecase.OpenWorkOrderInput {
	return usecase.OpenWorkOrderInput{
		VehicleID:      r.VehicleID,
		MechanicID:     r.MechanicID,
		Odometer:       r.Odometer,
		ReportedDefect: r.ReportedDefect,
	}
}

// AddPartLineRequest accepts either a catalog reference (peca_id) or an ad-hoc
// part (nome_peca + valor_unitario). The use case rejects mixed payloads.
type AddPartLineRequest struct {
	PartID    string   `json:"peca_id"`
	AdHocName string   `json:"nome_peca"`
	Quantity  int      `json:"quantidade" binding:"required"`
	UnitPrice *float64 `json:"valor_unitario"`
}

func (r AddPartLineRequest) ToInput() usecase.AddPartLineInput {
	return usecase.AddPartLineInput{
		PartID:    r.PartID,
		AdHocName: r.AdHocName,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

type AddServiceLineRequest struct {
	ServiceID string   `json:"servico_id" binding:"required"`
	Quantity  int      `json:"quantidade"`
	UnitPrice *float64 `json:"valor_unitario"`
}

func (r AddServiceLineRequest) ToInput() usecase.AddServiceLineInput {
	return usecase.AddServiceLineInput{
		ServiceID: r.ServiceID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
