package request

import "oficina_xpto/internal/domain/entities"

type MechanicRequest struct {
	Name      string `json:"nome" binding:"required"`
	Specialty string `json:"especialidade"`
}

func (r MechanicRequest) ToEntity(id string) entities.Mechanic {
	return entities.Mechanic{
		ID:        id,
		Name:      r.Name,
		Specialty: r.Specialty,
	}
}
