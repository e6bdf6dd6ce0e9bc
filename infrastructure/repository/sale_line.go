package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/internal/domain"
)

const (
	saleLinesTable = "productos_vendidos pv"
)

type SaleLineRepository interface {
	// ListAllWithSaleAndProduct retorna todas as linhas de venda unidas com a
	// venda (timestamp bruto) e o produto (preços atuais). A filtragem por
	// período é responsabilidade do agregador, não do banco
	ListAllWithSaleAndProduct() ([]*domain.SaleLineEntry, error)
}

type saleLineRepository struct {
	conn *postgres.Connection
}

func NewSaleLineRepository(conn *postgres.Connection) SaleLineRepository {
	return &saleLineRepository{
		conn: conn,
	}
}

func (r *saleLineRepository) ListAllWithSaleAndProduct() ([]*domain.SaleLineEntry, error) {
	query, args, err := squirrel.
		Select(
			"pv.producto_id",
			"pv.cantidad",
			"p.precio_venta",
			"p.precio_compra",
			"v.fecha_venta",
		).
		From(saleLinesTable).
		Join("ventas v ON v.id = pv.venta_id").
		Join("productos p ON p.id_producto = pv.producto_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SaleLineEntry, 0)
	for rows.Next() {
		entry := &domain.SaleLineEntry{}

		err := rows.Scan(
			&entry.ProductID,
			&entry.Quantity,
			&entry.UnitSalePrice,
			&entry.UnitCostPrice,
			&entry.SoldAtRaw,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de venda: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
