package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CostPrice  decimal.Decimal `json:"cost_price,omitempty"`
	CategoryID int             `json:"category_id,omitempty"`
	Codes      []string        `json:"codes"`
}
