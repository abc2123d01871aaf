package response

import "oficina_xpto/internal/domain/entities"

type MechanicResponse struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade,omitempty"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:        m.ID,
		Name:      m.Name,
		Specialty: m.Specialty,
	}
}

func FromMechanics(mechanics []entities.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(mechanics))
	for _, m := range mechanics {
		out = append(out, FromMechanic(m))
	}
	return out
}
