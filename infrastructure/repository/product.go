package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/internal/domain"
)

const (
	productsTable = "productos p"
)

type ProductRepository interface {
	GetByID(id int) (*domain.Product, error)
	GetByIDs(ids []int) ([]*domain.Product, error)
	UpdateCodes(id int, codes []string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// GetByID retorna o produto pelo id, ou nil quando não encontrado
func (r *productRepository) GetByID(id int) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id_producto", "p.nombre", "p.precio_venta", "p.precio_compra", "p.id_categoria", "p.codigos").
		From(productsTable).
		Where(squirrel.Eq{"p.id_producto": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := r.scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

// GetByIDs retorna os produtos cujos ids estão na lista informada
func (r *productRepository) GetByIDs(ids []int) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}

	query, args, err := squirrel.
		Select("p.id_producto", "p.nombre", "p.precio_venta", "p.precio_compra", "p.id_categoria", "p.codigos").
		From(productsTable).
		Where(squirrel.Eq{"p.id_producto": ids}).
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

	products := make([]*domain.Product, 0, len(ids))
	for rows.Next() {
		product, err := r.scanProductRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// UpdateCodes substitui o array de códigos de barras do produto
func (r *productRepository) UpdateCodes(id int, codes []string) error {
	query, args, err := squirrel.
		Update("productos").
		Set("codigos", pq.Array(codes)).
		Where(squirrel.Eq{"id_producto": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar códigos do produto: %w", err)
	}

	return nil
}

func (r *productRepository) scanProduct(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}
	var codes pq.StringArray

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.SalePrice,
		&product.CostPrice,
		&product.CategoryID,
		&codes,
	)
	if err != nil {
		return nil, err
	}

	product.Codes = codes
	if product.Codes == nil {
		product.Codes = []string{}
	}

	return product, nil
}

func (r *productRepository) scanProductRows(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}
	var codes pq.StringArray

	err := rows.Scan(
		&product.ID,
		&product.Name,
		&product.SalePrice,
		&product.CostPrice,
		&product.CategoryID,
		&codes,
	)
	if err != nil {
		return nil, err
	}

	product.Codes = codes
	if product.Codes == nil {
		product.Codes = []string{}
	}

	return product, nil
}
