package entities

// Mechanic (mecanico) is assigned to work orders.
type Mechanic struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
}
