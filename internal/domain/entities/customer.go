package entities

// Customer is a workshop customer (cliente).
//
// Storage model (DynamoDB):
//   - PK: id
//
// TaxID (cpf_cnpj) must be unique; the repository enforces it with a
// lookup before insert since DynamoDB cannot express a secondary
// uniqueness constraint.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"cpf_cnpj"`
	Address string `json:"endereco"`
}
