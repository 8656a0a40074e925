package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, plu, name"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta un producto y devuelve la fila con el id asignado por la base.
func (r *ProductRepo) Create(ctx context.Context, plu, name string) (*entity.Product, error) {
	query := `INSERT INTO products (plu, name) VALUES ($1, $2) RETURNING ` + productColumns
	var p entity.Product
	err := r.q.QueryRow(ctx, query, plu, name).Scan(&p.ID, &p.PLU, &p.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert product: plu %q duplicado: %w", plu, err)
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

// Find lista productos que cumplen los filtros (plu exacto, name por subcadena sin distinguir mayúsculas).
func (r *ProductRepo) Find(ctx context.Context, filters repository.Filters) ([]*entity.Product, error) {
	where, args, err := buildWhere(productFilterFields, filters)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1` + where + ` ORDER BY id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.PLU, &p.Name); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
