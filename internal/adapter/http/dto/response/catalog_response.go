package response

import "oficina_xpto/internal/domain/entities"

type PartResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"codigo"`
	Name      string  `json:"nome"`
	SalePrice float64 `json:"valor_venda"`
	StockQty  int     `json:"estoque_atual"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		SalePrice: p.SalePrice,
		StockQty:  p.StockQty,
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}

type ServiceResponse struct {
	ID               string  `json:"id"`
	Description      string  `json:"descricao"`
	LaborPrice       float64 `json:"valor_mao_obra"`
	EstimatedMinutes int     `json:"tempo_estimado_minutos,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:               s.ID,
		Description:      s.Description,
		LaborPrice:       s.LaborPrice,
		EstimatedMinutes: s.EstimatedMinutes,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
