package entities

// Service is a labor catalog item (servico).
type Service struct {
	ID               string  `json:"id"`
	Description      string  `json:"descricao"`
	LaborPrice       float64 `json:"valor_mao_obra"`
	EstimatedMinutes int     `json:"tempo_estimado_minutos"`
}
