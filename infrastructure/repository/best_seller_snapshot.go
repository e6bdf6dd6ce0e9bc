package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/internal/domain"
)

const (
	bestSellerSnapshotsTable = "best_seller_snapshots bss"
)

type BestSellerSnapshotRepository interface {
	GetSnapshot() (*domain.BestSellerSnapshotResponse, error)
	SaveOrUpdateSnapshot(items []*domain.BestSellerSnapshotItem) error
}

type bestSellerSnapshotRepository struct {
	conn *postgres.Connection
}

func NewBestSellerSnapshotRepository(conn *postgres.Connection) BestSellerSnapshotRepository {
	return &bestSellerSnapshotRepository{
		conn: conn,
	}
}

// GetSnapshot retorna o último snapshot persistido do ranking de mais vendidos,
// ordenado pela posição
func (r *bestSellerSnapshotRepository) GetSnapshot() (*domain.BestSellerSnapshotResponse, error) {
	query, args, err := squirrel.
		Select(
			"bss.id",
			"bss.product_id",
			"bss.product_name",
			"bss.quantity_sold",
			"bss.position",
			"bss.created_at",
			"bss.updated_at",
		).
		From(bestSellerSnapshotsTable).
		OrderBy("bss.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.BestSellerSnapshotResponse{
				Snapshot:   []domain.BestSellerSnapshotItem{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.BestSellerSnapshotItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item := domain.BestSellerSnapshotItem{}

		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.QuantitySold,
			&item.Position,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do snapshot: %w", err)
		}

		items = append(items, item)

		// Manter o update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.BestSellerSnapshotResponse{
		Snapshot:   items,
		LastUpdate: lastUpdate,
	}, nil
}

// SaveOrUpdateSnapshot persiste o ranking em lote, com upsert por produto
func (r *bestSellerSnapshotRepository) SaveOrUpdateSnapshot(items []*domain.BestSellerSnapshotItem) error {
	if len(items) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("best_seller_snapshots").
		Columns(
			"product_id",
			"product_name",
			"quantity_sold",
			"position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range items {
		query = query.Values(
			item.ProductID,
			item.ProductName,
			item.QuantitySold,
			item.Position,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (product_id) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			quantity_sold = EXCLUDED.quantity_sold,
			position = EXCLUDED.position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
