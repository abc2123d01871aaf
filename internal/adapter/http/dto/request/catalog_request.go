package request

import "oficina_xpto/internal/domain/entities"

type PartRequest struct {
	Code      string  `json:"codigo" binding:"required"`
	Name      string  `json:"nome" binding:"required"`
	SalePrice float64 `json:"valor_venda" binding:"required"`
	StockQty  int     `json:"estoque_atual"`
}

func (r PartRequest) ToEntity(id string) entities.Part {
	return entities.Part{
		ID:        id,
		Code:      r.Code,
		Name:      r.Name,
		SalePrice: r.SalePrice,
		StockQty:  r.StockQty,
	}
}

type ServiceCatalogRequest struct {
	Description      string  `json:"descricao" binding:"required"`
	LaborPrice       float64 `json:"valor_mao_obra" binding:"required"`
	EstimatedMinutes int     `json:"tempo_estimado_minutos"`
}

func (r ServiceCatalogRequest) ToEntity(id string) entities.Service {
	return entities.Service{
		ID:               id,
		Description:      r.Description,
		LaborPrice:       r.LaborPrice,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}
