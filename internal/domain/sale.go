package domain

import "github.com/shopspring/decimal"

type Sale struct {
	ID          int         `json:"id"`
	ReceiptCode string      `json:"receipt_code"`
	SoldAt      string      `json:"sold_at"` // Formato "MM/DD/YYYY, HH:MM:SS" no fuso da loja
	Lines       []*SaleLine `json:"lines"`
}

type SaleLine struct {
	ID        int `json:"id"`
	SaleID    int `json:"sale_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// NewSaleLine é uma linha de venda recebida no registro de uma nova venda
type NewSaleLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// SaleLineEntry é o formato lido do banco para a agregação de lucros: a linha
// de venda já unida com a sua venda (timestamp bruto) e o produto (preços atuais)
type SaleLineEntry struct {
	ProductID     int
	Quantity      int
	UnitSalePrice decimal.Decimal
	UnitCostPrice decimal.Decimal
	SoldAtRaw     string
}
