package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-service/internal/domain"
	"github.com/jhoicas/stock-service/internal/domain/entity"
	"github.com/jhoicas/stock-service/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = "id, product_id, shop_id, on_shelf, in_order"

const (
	increaseStockSQL = `
		UPDATE stock SET on_shelf = on_shelf + $1
		WHERE id = $2
		RETURNING ` + stockColumns

	// La condición on_shelf >= $1 hace de lectura y escritura en una sola sentencia:
	// dos restas concurrentes no pueden dejar on_shelf negativo.
	decreaseStockSQL = `
		UPDATE stock SET on_shelf = on_shelf - $1
		WHERE id = $2 AND on_shelf >= $1
		RETURNING ` + stockColumns

	findStockSQL = `
		SELECT s.id, s.product_id, s.shop_id, s.on_shelf, s.in_order, p.plu, p.name, sh.name AS shop_name
		FROM stock s
		JOIN products p ON s.product_id = p.id
		JOIN shops sh ON s.shop_id = sh.id
		WHERE 1=1`
)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta una fila de stock. No hay restricción de unicidad sobre (product_id, shop_id).
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	query := `
		INSERT INTO stock (product_id, shop_id, on_shelf, in_order)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(ctx, query, stock.ProductID, stock.ShopID, stock.OnShelf, stock.InOrder))
	if err != nil {
		return nil, fmt.Errorf("insert stock: %w", err)
	}
	return s, nil
}

// Increase suma quantity a on_shelf. Si la suma desborda la columna devuelve ErrInvalidInput.
func (r *StockRepo) Increase(ctx context.Context, stockID, quantity int64) (*entity.Stock, error) {
	s, err := scanStock(r.q.QueryRow(ctx, increaseStockSQL, quantity, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isOutOfRange(err) {
			return nil, fmt.Errorf("%w: on_shelf excedería el máximo de la columna", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("increase stock: %w", err)
	}
	return s, nil
}

// Decrease resta quantity de on_shelf solo si alcanza. Sin fila afectada no se sabe si
// el id no existe o si el stock no alcanza: ambos casos son ErrInsufficientStock.
func (r *StockRepo) Decrease(ctx context.Context, stockID, quantity int64) (*entity.Stock, error) {
	s, err := scanStock(r.q.QueryRow(ctx, decreaseStockSQL, quantity, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("decrease stock: %w", err)
	}
	return s, nil
}

// Find lista stock con producto y tienda según los filtros. Sin coincidencias devuelve slice vacío.
func (r *StockRepo) Find(ctx context.Context, filters repository.Filters) ([]*entity.StockView, error) {
	where, args, err := buildWhere(stockFilterFields, filters)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, findStockSQL+where+` ORDER BY s.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("find stock: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StockView, 0)
	for rows.Next() {
		var v entity.StockView
		if err := rows.Scan(&v.ID, &v.ProductID, &v.ShopID, &v.OnShelf, &v.InOrder, &v.PLU, &v.Name, &v.ShopName); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	if err := row.Scan(&s.ID, &s.ProductID, &s.ShopID, &s.OnShelf, &s.InOrder); err != nil {
		return nil, err
	}
	return &s, nil
}
