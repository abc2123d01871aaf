package request

import "oficina_xpto/internal/domain/entities"

type CustomerRequest struct {
	Name    string `json:"nome" binding:"required"`
	Phone   string `json:"telefone" binding:"required"`
	Email   string `json:"email"`
	TaxID   string `json:"cpf_cnpj" binding:"required"`
	Address string `json:"endereco"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:      id,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		TaxID:   r.TaxID,
		Address: r.Address,
	}
}
