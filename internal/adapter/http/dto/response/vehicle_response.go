package response

import "oficina_xpto/internal/domain/entities"

type VehicleResponse struct {
	ID         string `json:"id"`
	Plate      string `json:"placa"`
	Model      string `json:"modelo"`
	Make       string `json:"marca"`
	Year       int    `json:"ano"`
	Color      string `json:"cor"`
	CustomerID string `json:"cliente_id"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		Plate:      v.Plate,
		Model:      v.Model,
		Make:       v.Make,
		Year:       v.Year,
		Color:      v.Color,
		CustomerID: v.CustomerID,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
