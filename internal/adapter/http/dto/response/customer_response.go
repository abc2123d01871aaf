package response

import "oficina_xpto/internal/domain/entities"

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"cpf_cnpj"`
	Address string `json:"endereco"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		TaxID:   c.TaxID,
		Address: c.Address,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
