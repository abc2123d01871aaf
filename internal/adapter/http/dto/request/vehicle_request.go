package request

import "oficina_xpto/internal/domain/entities"

type VehicleRequest struct {
	Plate      string `json:"placa" binding:"required"`
	Model      string `json:"modelo" binding:"required"`
	Make       string `json:"marca" binding:"required"`
	Year       int    `json:"ano" binding:"required"`
	Color      string `json:"cor"`
	CustomerID string `json:"cliente_id" binding:"required"`
}

func (r VehicleRequest) ToEntity(id string) entities.Vehicle {
	return entities.Vehicle{
		ID:         id,
		Plate:      r.Plate,
		Model:      r.Model,
		Make:       r.Make,
		Year:       r.Year,
		Color:      r.Color,
		CustomerID: r.CustomerID,
	}
}
