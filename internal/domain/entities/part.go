package entities

// Part is a catalog/inventory item (peca).
//
// Storage model (DynamoDB):
//   - PK: id
//
// StockQty is only ever mutated through conditional updates so it can
// never go negative, even under concurrent line-item additions.
type Part struct {
	ID        string  `json:"id"`
	Code      string  `json:"codigo"`
	Name      string  `json:"nome"`
	SalePrice float64 `json:"valor_venda"`
	StockQty  int     `json:"estoque_atual"`
}
