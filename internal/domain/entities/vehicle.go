package entities

// Vehicle belongs to exactly one Customer; many vehicles may reference
// the same customer. The reference is non-owning: deleting a vehicle
// never touches the customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (cliente_id-index): cliente_id
type Vehicle struct {
	ID         string `json:"id"`
	Plate      string `json:"placa"`
	Model      string `json:"modelo"`
	Make       string `json:"marca"`
	Year       int    `json:"ano"`
	Color      string `json:"cor"`
	CustomerID string `json:"cliente_id"`
}
