package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/internal/domain"
)

type BestSellerRepository interface {
	// GetQuantitySoldByProduct retorna a soma de quantidades vendidas por
	// produto, ordenada de forma decrescente pela quantidade
	GetQuantitySoldByProduct() ([]*domain.ProductQuantity, error)
}

type bestSellerRepository struct {
	conn *postgres.Connection
}

func NewBestSellerRepository(conn *postgres.Connection) BestSellerRepository {
	return &bestSellerRepository{
		conn: conn,
	}
}

func (r *bestSellerRepository) GetQuantitySoldByProduct() ([]*domain.ProductQuantity, error) {
	query, args, err := squirrel.
		Select(
			"pv.producto_id",
			"SUM(pv.cantidad) AS total_vendido",
		).
		From(saleLinesTable).
		GroupBy("pv.producto_id").
		OrderBy("total_vendido DESC").
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

	sums := make([]*domain.ProductQuantity, 0)
	for rows.Next() {
		sum := &domain.ProductQuantity{}

		if err := rows.Scan(&sum.ProductID, &sum.QuantitySold); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma de quantidades: %w", err)
		}

		sums = append(sums, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sums, nil
}
