// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/minimarket/backoffice-api/infrastructure/database/postgres"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	categoriesTable = "categorias c"
)

type CategoryRepository interface {
	ListWithProducts() ([]*domain.Category, error)
	ListWithProductsWithoutCodes() ([]*domain.Category, error)
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

// ListWithProducts retorna todas as categorias com seus produtos, produtos
// ordenados por preço de venda crescente dentro de cada categoria
func (r *categoryRepository) ListWithProducts() ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select(
			"c.id_categoria",
			"c.nombre",
			"p.id_producto",
			"p.nombre",
			"p.precio_venta",
			"p.codigos",
		).
		From(categoriesTable).
		LeftJoin("productos p ON p.id_categoria = c.id_categoria").
		OrderBy("c.id_categoria ASC", "p.precio_venta ASC").
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

	return r.groupByCategory(rows)
}

// ListWithProductsWithoutCodes retorna os produtos sem nenhum código de barras
// atribuído, agrupados por categoria e com categorias em ordem alfabética
func (r *categoryRepository) ListWithProductsWithoutCodes() ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select(
			"c.id_categoria",
			"c.nombre",
			"p.id_producto",
			"p.nombre",
			"p.precio_venta",
			"p.codigos",
		).
		From(categoriesTable).
		Join("productos p ON p.id_categoria = c.id_categoria").
		Where(squirrel.Expr("(p.codigos IS NULL OR cardinality(p.codigos) = 0)")).
		OrderBy("c.nombre ASC", "p.nombre ASC").
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

	return r.groupByCategory(rows)
}

// groupByCategory agrupa as linhas categoria+produto preservando a ordem do resultado
func (r *categoryRepository) groupByCategory(rows *sql.Rows) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0)
	byID := make(map[int]*domain.Category)

	for rows.Next() {
		var (
			categoryID   int
			categoryName string
			productID    sql.NullInt64
			productName  sql.NullString
			salePrice    decimal.NullDecimal
			codes        pq.StringArray
		)

		err := rows.Scan(
			&categoryID,
			&categoryName,
			&productID,
			&productName,
			&salePrice,
			&codes,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}

		category, ok := byID[categoryID]
		if !ok {
			category = &domain.Category{
				ID:       categoryID,
				Name:     categoryName,
				Products: make([]*domain.Product, 0),
			}
			byID[categoryID] = category
			categories = append(categories, category)
		}

		// LEFT JOIN pode produzir categoria sem produto
		if productID.Valid {
			product := &domain.Product{
				ID:         int(productID.Int64),
				Name:       productName.String,
				CategoryID: categoryID,
				Codes:      codes,
			}
			if salePrice.Valid {
				product.SalePrice = salePrice.Decimal
			}
			if product.Codes == nil {
				product.Codes = []string{}
			}
			category.Products = append(category.Products, product)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
