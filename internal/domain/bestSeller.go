package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductQuantity é a soma de quantidades vendidas por produto, pré-ordenada
// de forma decrescente pela fonte de dados
type ProductQuantity struct {
	ProductID    int
	QuantitySold int
}

// BestSellerEntry é uma entrada do relatório de mais vendidos: a soma de
// quantidades enriquecida com os metadados do produto. Os campos de metadados
// ficam nulos quando o produto não existe mais no catálogo
type BestSellerEntry struct {
	ProductID    int              `json:"product_id"`
	Name         *string          `json:"name"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
	Codes        []string         `json:"codes"`
	QuantitySold int              `json:"quantity_sold"`
}

type BestSellerSnapshotResponse struct {
	Snapshot   []BestSellerSnapshotItem `json:"snapshot"`
	LastUpdate time.Time                `json:"last_update"`
}

// BestSellerSnapshotItem é uma posição do ranking de mais vendidos persistida
// pela sincronização diária
type BestSellerSnapshotItem struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `json:"quantity_sold"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
