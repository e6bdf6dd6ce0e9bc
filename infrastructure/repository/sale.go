package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/internal/domain"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// Create persiste a venda e suas linhas em uma única transação
func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("ventas").
			Columns("fecha_venta", "codigo_recibo").
			Values(sale.SoldAt, sale.ReceiptCode).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção da venda: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&sale.ID); err != nil {
			return fmt.Errorf("erro ao inserir venda: %w", err)
		}

		for _, line := range sale.Lines {
			line.SaleID = sale.ID

			query, args, err := squirrel.
				Insert("productos_vendidos").
				Columns("venta_id", "producto_id", "cantidad").
				Values(line.SaleID, line.ProductID, line.Quantity).
				Suffix("RETURNING id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção da linha: %w", err)
			}

			if err := tx.QueryRowContext(ctx, query, args...).Scan(&line.ID); err != nil {
				return fmt.Errorf("erro ao inserir linha da venda: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}
