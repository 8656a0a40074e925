package repository

import (
	"context"

	"github.com/jhoicas/stock-service/internal/domain/entity"
)

// StockRepository define el puerto para crear, mutar y consultar stock por tienda+producto.
// Cada mutación es una única sentencia atómica; no hay read-then-write en la aplicación.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
	// Increase suma quantity a on_shelf. Devuelve domain.ErrNotFound si la fila no existe.
	Increase(ctx context.Context, stockID, quantity int64) (*entity.Stock, error)
	// Decrease resta quantity solo si on_shelf >= quantity. Si no hay fila afectada
	// devuelve domain.ErrInsufficientStock (no se distingue de "no encontrado").
	Decrease(ctx context.Context, stockID, quantity int64) (*entity.Stock, error)
	Find(ctx context.Context, filters Filters) ([]*entity.StockView, error)
}
